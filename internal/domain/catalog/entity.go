// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product as served by the backend.
// Prices are integer minor units; weight is in grams.
type Product struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Picture     string  `json:"picture"`
	Price       int64   `json:"price"`
	Stock       int     `json:"stock"`
	WeightGrams float64 `json:"weightInGrams"`

	// TrackStock reports whether the available stock is known for this
	// product. Products fetched from the catalog always track stock;
	// ad-hoc products may not, in which case cart quantities are unclamped.
	TrackStock bool `json:"-"`

	// DisplayQty is the default selectable quantity shown next to the
	// product. It is presentation state, never part of product identity.
	DisplayQty int `json:"-"`
}
