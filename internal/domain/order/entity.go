// internal/domain/order/entity.go
package order

import (
	"strings"
	"time"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Item represents one order line: a product reference with the quantity and
// unit price captured at order time.
type Item struct {
	ID        string `json:"id,omitempty"`
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Order represents a server-created order
type Order struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customerId,omitempty"`
	Status      Status     `json:"status"`
	Items       []Item     `json:"orderItems"`
	TotalAmount int64      `json:"totalAmount,omitempty"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
}

// Transaction represents a payment transaction tied to an order. The backend
// reports the payment status as free text; classify it once with Outcome
// instead of re-parsing the string elsewhere.
type Transaction struct {
	ID                 string     `json:"id"`
	PayerName          string     `json:"payerName"`
	Description        string     `json:"description"`
	PayerTransactionID string     `json:"payerTransactionId,omitempty"`
	PaymentStatus      string     `json:"paymentStatus"`
	TotalAmount        int64      `json:"totalAmount"`
	OrderID            string     `json:"orderId"`
	PaidAt             *time.Time `json:"paidAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// GetFormattedTotal returns the transaction amount as a float in major units
func (t *Transaction) GetFormattedTotal() float64 {
	return float64(t.TotalAmount) / 100
}

// Outcome classifies the transaction's payment status
func (t *Transaction) Outcome() PaymentOutcome {
	return ClassifyPaymentStatus(t.PaymentStatus)
}

// PaymentOutcome is the closed classification of a gateway payment status
type PaymentOutcome int

const (
	PaymentFailed PaymentOutcome = iota
	PaymentPending
	PaymentSuccess
)

// String implements fmt.Stringer
func (o PaymentOutcome) String() string {
	switch o {
	case PaymentSuccess:
		return "success"
	case PaymentPending:
		return "pending"
	default:
		return "failed"
	}
}

// ClassifyPaymentStatus maps the backend's free-text payment status onto a
// PaymentOutcome. Matching is case-insensitive: statuses containing "success"
// or equal to "completed"/"paid" are successful, statuses containing "pend"
// are pending, and anything else is failed.
func ClassifyPaymentStatus(status string) PaymentOutcome {
	s := strings.ToLower(strings.TrimSpace(status))

	if strings.Contains(s, "success") || s == "completed" || s == "paid" {
		return PaymentSuccess
	}
	if strings.Contains(s, "pend") {
		return PaymentPending
	}
	return PaymentFailed
}
