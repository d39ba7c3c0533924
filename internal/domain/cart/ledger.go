// internal/domain/cart/ledger.go
package cart

import (
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// Ledger is the in-memory cart: the single source of truth for what the
// shopper intends to buy. Lines keep insertion order for display; totals do
// not depend on it. Mutating an id that is not in the cart is a silent no-op.
//
// The ledger is not safe for concurrent use; the checkout flow runs all
// mutations on one goroutine.
type Ledger struct {
	lines []Line
	index map[uint64]int
}

// NewLedger creates an empty cart ledger
func NewLedger() *Ledger {
	return &Ledger{
		index: make(map[uint64]int),
	}
}

// Add merges a product into the cart. If the product is already present the
// quantities are summed and clamped to the available stock (when stock is
// tracked). A new line gets at least quantity 1, clamped the same way.
func (c *Ledger) Add(p catalog.Product, quantity int) Line {
	if i, ok := c.index[p.ID]; ok {
		existing := &c.lines[i]
		newQty := existing.Quantity + quantity
		if existing.Product.TrackStock {
			newQty = min(newQty, existing.Product.Stock)
		} else if p.TrackStock {
			newQty = min(newQty, p.Stock)
		}
		existing.Quantity = newQty
		return *existing
	}

	if quantity < 1 {
		quantity = 1
	}
	if p.TrackStock {
		quantity = min(quantity, p.Stock)
	}

	line := Line{Product: p, Quantity: quantity}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, line)
	return line
}

// Increase adjusts the line quantity by +1, clamped at the stock ceiling.
// At the ceiling this is a no-op, as is an unknown id.
func (c *Ledger) Increase(productID uint64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	line := &c.lines[i]
	desired := line.Quantity + 1
	if line.Product.TrackStock {
		desired = min(desired, line.Product.Stock)
	}
	line.Quantity = desired
}

// Decrease adjusts the line quantity by -1, floored at 1. Decreasing never
// removes the line; use Remove for that.
func (c *Ledger) Decrease(productID uint64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	line := &c.lines[i]
	line.Quantity = max(1, line.Quantity-1)
}

// Remove deletes the line entirely regardless of quantity
func (c *Ledger) Remove(productID uint64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}

// Clear empties the ledger. Called exactly once per sale, after the payment
// transaction settles successfully.
func (c *Ledger) Clear() {
	c.lines = nil
	c.index = make(map[uint64]int)
}

// Lines returns the cart lines in insertion order
func (c *Ledger) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of cart lines
func (c *Ledger) Len() int {
	return len(c.lines)
}

// Quantity returns the quantity for a product id, or 0 if not in the cart
func (c *Ledger) Quantity(productID uint64) int {
	i, ok := c.index[productID]
	if !ok {
		return 0
	}
	return c.lines[i].Quantity
}

// Sales maps the cart contents to the stock-ledger reconciliation input
func (c *Ledger) Sales() []catalog.Sale {
	sales := make([]catalog.Sale, len(c.lines))
	for i, line := range c.lines {
		sales[i] = catalog.Sale{ProductID: line.Product.ID, Quantity: line.Quantity}
	}
	return sales
}

// Totals calculates cart totals with the given tax rate. Every mutation is
// immediately visible here; nothing is cached.
func (c *Ledger) Totals(taxRate float64) Totals {
	return computeTotals(c.lines, taxRate)
}
