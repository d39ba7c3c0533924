// internal/domain/cart/ledger_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

func tracked(id uint64, price int64, stock int) catalog.Product {
	return catalog.Product{ID: id, Name: "product", Price: price, Stock: stock, TrackStock: true}
}

func TestAddNewLine(t *testing.T) {
	c := NewLedger()

	line := c.Add(tracked(1, 1000, 5), 3)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 3, c.Quantity(1))
}

func TestAddMergesAndClampsToStock(t *testing.T) {
	c := NewLedger()
	p := tracked(1, 1000, 5)

	c.Add(p, 3)
	line := c.Add(p, 10)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, line.Quantity, "merged quantity must clamp at stock")
}

func TestAddZeroQuantityBecomesOne(t *testing.T) {
	c := NewLedger()

	line := c.Add(tracked(1, 1000, 5), 0)

	assert.Equal(t, 1, line.Quantity)
}

func TestAddClampsNewLineToStock(t *testing.T) {
	c := NewLedger()

	line := c.Add(tracked(1, 1000, 2), 7)

	assert.Equal(t, 2, line.Quantity)
}

func TestAddUntrackedStockIsUnclamped(t *testing.T) {
	c := NewLedger()
	p := catalog.Product{ID: 1, Price: 1000}

	c.Add(p, 4)
	c.Add(p, 4)

	assert.Equal(t, 8, c.Quantity(1))
}

func TestIncreaseClampsAtStockCeiling(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 3), 2)

	c.Increase(1)
	assert.Equal(t, 3, c.Quantity(1))

	// At the ceiling increase is a no-op
	c.Increase(1)
	assert.Equal(t, 3, c.Quantity(1))
}

func TestDecreaseFloorsAtOne(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 2)

	c.Decrease(1)
	assert.Equal(t, 1, c.Quantity(1))

	// At quantity 1 decrease is a no-op, never a removal
	c.Decrease(1)
	assert.Equal(t, 1, c.Quantity(1))
	assert.Equal(t, 1, c.Len())
}

func TestMutatingUnknownIDIsNoOp(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 2)

	c.Increase(99)
	c.Decrease(99)
	c.Remove(99)

	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 1, c.Len())
}

func TestRemoveDropsLineFromTotals(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 2)
	c.Add(tracked(2, 500, 5), 1)

	c.Remove(1)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Quantity(1))
	assert.Equal(t, int64(500), c.Totals(0).SubTotal)
}

func TestRemoveKeepsInsertionOrder(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 100, 9), 1)
	c.Add(tracked(2, 200, 9), 1)
	c.Add(tracked(3, 300, 9), 1)

	c.Remove(2)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint64(1), lines[0].Product.ID)
	assert.Equal(t, uint64(3), lines[1].Product.ID)

	// Index still resolves the shifted line
	c.Increase(3)
	assert.Equal(t, 2, c.Quantity(3))
}

func TestClearEmptiesLedger(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 2)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Totals(0.19).TotalAmount)
}

func TestTotalsWithTax(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 2)

	totals := c.Totals(0.19)

	assert.Equal(t, 1, totals.ItemCount)
	assert.Equal(t, 2, totals.TotalQuantity)
	assert.Equal(t, int64(2000), totals.SubTotal)
	assert.Equal(t, int64(380), totals.TaxAmount)
	assert.Equal(t, int64(2380), totals.TotalAmount)
}

func TestTotalsSeeMutationsImmediately(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(1, 1000, 5), 1)
	assert.Equal(t, int64(1000), c.Totals(0).SubTotal)

	c.Increase(1)
	assert.Equal(t, int64(2000), c.Totals(0).SubTotal)

	c.Remove(1)
	assert.Equal(t, int64(0), c.Totals(0).SubTotal)
}

func TestQuantityInvariantUnderMutationSequences(t *testing.T) {
	c := NewLedger()
	p := tracked(1, 1000, 4)

	ops := []func(){
		func() { c.Add(p, 3) },
		func() { c.Increase(1) },
		func() { c.Increase(1) },
		func() { c.Increase(1) },
		func() { c.Decrease(1) },
		func() { c.Add(p, 10) },
		func() { c.Decrease(1) },
		func() { c.Decrease(1) },
		func() { c.Decrease(1) },
		func() { c.Decrease(1) },
	}

	for _, op := range ops {
		op()
		q := c.Quantity(1)
		assert.GreaterOrEqual(t, q, 1)
		assert.LessOrEqual(t, q, 4)
	}
}

func TestSalesMapsCartLines(t *testing.T) {
	c := NewLedger()
	c.Add(tracked(7, 1000, 5), 2)
	c.Add(tracked(8, 500, 5), 1)

	sales := c.Sales()

	require.Len(t, sales, 2)
	assert.Equal(t, catalog.Sale{ProductID: 7, Quantity: 2}, sales[0])
	assert.Equal(t, catalog.Sale{ProductID: 8, Quantity: 1}, sales[1])
}
