// internal/domain/cart/entity.go
package cart

import (
	"math"

	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// Line represents one selected product in the cart. Identity is the product
// id: the ledger keeps exactly one line per product.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Total returns the line total (quantity × unit price) in minor units
func (l Line) Total() int64 {
	return int64(l.Quantity) * l.Product.Price
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of cart lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // Total before tax
	TaxAmount     int64 `json:"tax_amount"`
	TotalAmount   int64 `json:"total_amount"` // Final total
}

func computeTotals(lines []Line, taxRate float64) Totals {
	var totals Totals

	totals.ItemCount = len(lines)
	for _, line := range lines {
		totals.TotalQuantity += line.Quantity
		totals.SubTotal += line.Total()
	}

	totals.TaxAmount = int64(math.Round(float64(totals.SubTotal) * taxRate))
	totals.TotalAmount = totals.SubTotal + totals.TaxAmount

	return totals
}
