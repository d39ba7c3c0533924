// internal/domain/payment/card.go
package payment

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MethodCard holds the card details collected at checkout. The number and
// expiry are kept as digits only; formatting is applied for display.
type MethodCard struct {
	HolderName string `json:"cardName"`
	Number     string `json:"cardNumber"`
	Expiry     string `json:"expDate"` // MMYY digits
	CVV        string `json:"cvv"`
}

// Digits strips every non-digit rune from s
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns a copy with number, expiry and CVV reduced to digits and
// the holder name upper-cased the way the form captures it.
func (c MethodCard) Normalize() MethodCard {
	c.HolderName = strings.ToUpper(strings.TrimSpace(c.HolderName))
	c.Number = Digits(c.Number)
	c.Expiry = Digits(c.Expiry)
	c.CVV = Digits(c.CVV)
	return c
}

// Validate checks field completeness: non-empty holder name, digit-only
// number of at least 12 digits, a 4-digit expiry (MMYY) and a CVV of at
// least 3 digits. Pure check, no side effects.
func (c MethodCard) Validate() error {
	n := c.Normalize()

	if n.HolderName == "" {
		return fmt.Errorf("card holder name is required")
	}
	if len(n.Number) < 12 {
		return fmt.Errorf("card number must have at least 12 digits")
	}
	if len(n.Expiry) != 4 {
		return fmt.Errorf("card expiry must be 4 digits (MMYY)")
	}
	if len(n.CVV) < 3 {
		return fmt.Errorf("card CVV must have at least 3 digits")
	}

	return nil
}

// FormatNumber formats a card number for display: Amex numbers (34/37) in
// 4-6-5 groups, everything else in groups of 4.
func FormatNumber(number string) string {
	digits := Digits(number)
	if len(digits) > 19 {
		digits = digits[:19]
	}
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37") {
		parts := []string{}
		for _, bounds := range [][2]int{{0, 4}, {4, 10}, {10, 15}} {
			if bounds[0] >= len(digits) {
				break
			}
			end := min(bounds[1], len(digits))
			parts = append(parts, digits[bounds[0]:end])
		}
		return strings.Join(parts, " ")
	}

	parts := []string{}
	for i := 0; i < len(digits); i += 4 {
		parts = append(parts, digits[i:min(i+4, len(digits))])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry renders the 4 expiry digits as MM/YY
func FormatExpiry(expiry string) string {
	digits := Digits(expiry)
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// EncodeCard serializes the card and encodes it with base64 for transmission.
// This is reversible obfuscation, not protection: a real deployment must rely
// on transport encryption and server-side tokenization instead.
func EncodeCard(c MethodCard) (string, error) {
	data, err := json.Marshal(c.Normalize())
	if err != nil {
		return "", fmt.Errorf("failed to encode card: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeCard reverses EncodeCard
func DecodeCard(encoded string) (MethodCard, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return MethodCard{}, fmt.Errorf("failed to decode card: %w", err)
	}

	var card MethodCard
	if err := json.Unmarshal(data, &card); err != nil {
		return MethodCard{}, fmt.Errorf("failed to decode card: %w", err)
	}
	return card, nil
}
