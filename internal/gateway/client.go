// internal/gateway/client.go
package gateway

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// Error is a backend rejection: a non-2xx response to a gateway call. The
// message comes from the backend's error body when it sent one.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
}

// Client calls the storefront backend: catalog fetch, order creation, payment
// submission and transaction lookup. It implements the gateway boundary the
// checkout workflow depends on.
type Client struct {
	http *resty.Client
	log  *logrus.Logger
}

// NewClient creates a gateway client from configuration
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetRetryCount(cfg.API.RetryCount).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http: http,
		log:  log,
	}
}

// FetchProducts retrieves the product catalog. Each product is returned with
// stock tracking enabled and a default selectable quantity of 1.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var (
		result ProductsResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("product")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if resp.IsError() {
		return nil, &Error{Op: "fetch products", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	products := result.Products
	for i := range products {
		products[i].TrackStock = true
		products[i].DisplayQty = 1
	}

	c.log.WithField("count", len(products)).Debug("Fetched product catalog")
	return products, nil
}

// CreateOrder creates an order from the cart snapshot
func (c *Client) CreateOrder(ctx context.Context, payload NewOrderPayload) (*NewOrderResponse, error) {
	var (
		result NewOrderResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(&apiErr).
		Post("/order")
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if resp.IsError() {
		return nil, &Error{Op: "create order", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	c.log.WithFields(logrus.Fields{
		"order_id":       result.OrderID,
		"transaction_id": result.Transaction.ID,
	}).Debug("Order created")
	return &result, nil
}

// SubmitPayment submits the encoded card for an order's transaction
func (c *Client) SubmitPayment(ctx context.Context, payload CheckoutPayload) (*order.Transaction, error) {
	var (
		result TransactionResult
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		SetError(&apiErr).
		Post("/checkout")
	if err != nil {
		return nil, fmt.Errorf("failed to submit payment: %w", err)
	}
	if resp.IsError() {
		return nil, &Error{Op: "submit payment", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	c.log.WithFields(logrus.Fields{
		"transaction_id": result.Transaction.ID,
		"status":         result.Transaction.PaymentStatus,
	}).Debug("Payment submitted")
	return &result.Transaction, nil
}

// GetTransaction fetches a transaction by id
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*order.Transaction, error) {
	var (
		result TransactionResult
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/transaction/" + transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	if resp.IsError() {
		return nil, &Error{Op: "fetch transaction", StatusCode: resp.StatusCode(), Message: apiErr.Message}
	}

	return &result.Transaction, nil
}
