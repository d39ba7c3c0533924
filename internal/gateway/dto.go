// internal/gateway/dto.go
package gateway

import (
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// ProductsResponse is the catalog fetch response
type ProductsResponse struct {
	OK       bool              `json:"ok"`
	Products []catalog.Product `json:"Products"`
}

// Delivery carries the recipient fields of an order creation request. Address
// is the combined "{city},{state} {address} {postalCode} {country}" string.
type Delivery struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// NewOrderPayload is the order creation request body
type NewOrderPayload struct {
	OrderID    string       `json:"orderId"`
	CustomerID string       `json:"customerId,omitempty"`
	OrderItems []order.Item `json:"orderItems"`
	Delivery   Delivery     `json:"delivery"`
}

// NewOrderTransaction is the transaction summary embedded in the order
// creation response
type NewOrderTransaction struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	TotalAmount   int64  `json:"totalAmount"`
	PayerName     string `json:"payerName"`
	PaymentStatus string `json:"paymentStatus"`
}

// NewOrderResponse is the order creation response
type NewOrderResponse struct {
	OrderID     string              `json:"orderId"`
	CustomerID  string              `json:"customerId"`
	Transaction NewOrderTransaction `json:"transaction"`
}

// CheckoutPayload is the payment submission request body. CreditCard is the
// encoded card blob produced by payment.EncodeCard.
type CheckoutPayload struct {
	CreditCard    string `json:"creditCard"`
	CustomerID    string `json:"customerId"`
	EmailHolder   string `json:"emailHolder"`
	TransactionID string `json:"transactionId"`
}

// TransactionResult is the response shape of both payment submission and
// transaction lookup
type TransactionResult struct {
	OK          bool              `json:"ok"`
	Transaction order.Transaction `json:"Transaction"`
}

// apiError is the backend's error body
type apiError struct {
	Message string `json:"message"`
}
