// internal/interfaces/http/store.go
package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/payment"
)

// Store is the in-memory backing state of the stub API. The payment status a
// transaction reports is scripted: each lookup advances through the script
// and the last entry sticks, which lets tests and demos drive pending →
// success (or failure) sequences deterministically.
type Store struct {
	mu           sync.Mutex
	products     []catalog.Product
	orders       map[string]*order.Order
	transactions map[string]*order.Transaction
	statusScript []string
	scriptPos    map[string]int
}

// NewStore creates a stub store over a product catalog. statusScript defaults
// to a single "SUCCESS" step when empty.
func NewStore(products []catalog.Product, statusScript ...string) *Store {
	if len(statusScript) == 0 {
		statusScript = []string{"SUCCESS"}
	}
	return &Store{
		products:     products,
		orders:       make(map[string]*order.Order),
		transactions: make(map[string]*order.Transaction),
		statusScript: statusScript,
		scriptPos:    make(map[string]int),
	}
}

// Products returns the catalog
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CreateOrder registers an order with a pending transaction and returns both
func (s *Store) CreateOrder(orderID string, items []order.Item, payerName string) (*order.Order, *order.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orderID == "" {
		return nil, nil, fmt.Errorf("orderId is required")
	}
	if _, exists := s.orders[orderID]; exists {
		return nil, nil, fmt.Errorf("order %s already exists", orderID)
	}

	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.Price
	}

	now := time.Now().UTC()
	o := &order.Order{
		ID:         orderID,
		CustomerID: uuid.NewString(),
		Status:     order.StatusPending,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	o.TotalAmount = total

	tx := &order.Transaction{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PayerName:     payerName,
		PaymentStatus: "PENDING",
		TotalAmount:   total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.orders[orderID] = o
	s.transactions[tx.ID] = tx
	return o, tx, nil
}

// SubmitPayment validates the encoded card against a known transaction
func (s *Store) SubmitPayment(transactionID, encodedCard string) (*order.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", transactionID)
	}

	card, err := payment.DecodeCard(encodedCard)
	if err != nil {
		return nil, fmt.Errorf("invalid credit card payload")
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credit card: %v", err)
	}

	tx.PayerName = card.HolderName
	tx.Description = fmt.Sprintf("Credit card payment for order %s", tx.OrderID)
	tx.UpdatedAt = time.Now().UTC()

	out := *tx
	return &out, nil
}

// GetTransaction returns a transaction, advancing its scripted payment status
func (s *Store) GetTransaction(transactionID string) (*order.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", transactionID)
	}

	pos := s.scriptPos[transactionID]
	tx.PaymentStatus = s.statusScript[pos]
	if pos < len(s.statusScript)-1 {
		s.scriptPos[transactionID] = pos + 1
	}

	if order.ClassifyPaymentStatus(tx.PaymentStatus) == order.PaymentSuccess && tx.PaidAt == nil {
		now := time.Now().UTC()
		tx.PaidAt = &now
		if o, ok := s.orders[tx.OrderID]; ok {
			o.Status = order.StatusPaid
			o.PaidAt = &now
		}
	}
	tx.UpdatedAt = time.Now().UTC()

	out := *tx
	return &out, nil
}
