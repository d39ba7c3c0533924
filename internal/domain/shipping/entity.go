// internal/domain/shipping/entity.go
package shipping

import (
	"fmt"
	"strings"
)

// Info holds the recipient and destination details collected before an order
// may be created.
type Info struct {
	Name       string `json:"shippName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"contry"`
}

// Validate checks field completeness. Recipient name, address, city, country,
// phone and email are all required. Pure check, no side effects.
func (i Info) Validate() error {
	var missing []string

	if i.Name == "" {
		missing = append(missing, "name")
	}
	if i.Address == "" {
		missing = append(missing, "address")
	}
	if i.City == "" {
		missing = append(missing, "city")
	}
	if i.Country == "" {
		missing = append(missing, "country")
	}
	if i.Phone == "" {
		missing = append(missing, "phone")
	}
	if i.Email == "" {
		missing = append(missing, "email")
	}

	if len(missing) > 0 {
		return fmt.Errorf("incomplete shipping information: missing %s", strings.Join(missing, ", "))
	}

	return nil
}

// DeliveryAddress combines the destination fields into the single formatted
// string the order API expects: "{city},{state} {address} {postalCode} {country}".
func (i Info) DeliveryAddress() string {
	return fmt.Sprintf("%s,%s %s %s %s", i.City, i.State, i.Address, i.PostalCode, i.Country)
}
