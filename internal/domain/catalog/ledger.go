// internal/domain/catalog/ledger.go
package catalog

// Sale is one purchased line applied to the stock ledger during
// reconciliation.
type Sale struct {
	ProductID uint64
	Quantity  int
}

// StockLedger holds the local catalog snapshot with per-product available
// stock. It is a display cache, not inventory truth: the backend owns real
// stock, and nothing here guards against another session buying the same
// units concurrently, so a count can go negative if sessions race.
type StockLedger struct {
	products []Product
	index    map[uint64]int
}

// NewStockLedger creates an empty stock ledger
func NewStockLedger() *StockLedger {
	return &StockLedger{
		index: make(map[uint64]int),
	}
}

// Load replaces the snapshot with a fresh catalog fetch. Every product is
// annotated with a default selectable quantity of 1.
func (l *StockLedger) Load(products []Product) {
	l.products = make([]Product, len(products))
	l.index = make(map[uint64]int, len(products))
	for i, p := range products {
		p.DisplayQty = 1
		l.products[i] = p
		l.index[p.ID] = i
	}
}

// Products returns the current snapshot in catalog order
func (l *StockLedger) Products() []Product {
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out
}

// Find returns the product with the given id, if present
func (l *StockLedger) Find(id uint64) (Product, bool) {
	i, ok := l.index[id]
	if !ok {
		return Product{}, false
	}
	return l.products[i], true
}

// Len returns the number of products in the snapshot
func (l *StockLedger) Len() int {
	return len(l.products)
}

// Reconcile applies a completed sale to the snapshot: every product matching
// a purchased line has its stock decremented by the purchased quantity and
// its display quantity reset to 1; products with no matching line are left
// unchanged. This is the only stock mutation, and the checkout workflow
// guarantees it runs at most once per completed transaction.
func (l *StockLedger) Reconcile(purchased []Sale) {
	for _, sale := range purchased {
		i, ok := l.index[sale.ProductID]
		if !ok {
			continue
		}
		l.products[i].Stock -= sale.Quantity
		l.products[i].DisplayQty = 1
	}
}
