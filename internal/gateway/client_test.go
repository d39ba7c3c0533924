// internal/gateway/client_test.go
package gateway

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/payment"
	stub "github.com/your-org/storefront-client/internal/interfaces/http"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Freezer", Price: 84000, Stock: 6},
		{ID: 2, Name: "Microwave", Price: 42000, Stock: 3},
	}
}

// newTestClient mounts the stub backend on an httptest server and points a
// gateway client at it.
func newTestClient(t *testing.T, statusScript ...string) (*Client, *stub.Store) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Environment: "test"},
	}
	store := stub.NewStore(testCatalog(), statusScript...)
	server := stub.NewServer(cfg, testLogger(), store)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	cfg.API = config.APIConfig{
		BaseURL: ts.URL + "/api/v1",
		Timeout: 5 * time.Second,
	}
	return NewClient(cfg, testLogger()), store
}

func createTestOrder(t *testing.T, client *Client) *NewOrderResponse {
	t.Helper()

	created, err := client.CreateOrder(context.Background(), NewOrderPayload{
		OrderID: "order-abc",
		OrderItems: []order.Item{
			{ProductID: 1, Quantity: 2, Price: 84000},
		},
		Delivery: Delivery{
			Name:    "Pepito Perez",
			Email:   "pepito@example.com",
			Address: "Bogota,Cundinamarca Calle 12 110111 COL",
			Phone:   "300",
		},
	})
	require.NoError(t, err)
	return created
}

func TestFetchProducts(t *testing.T) {
	client, _ := newTestClient(t)

	products, err := client.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Freezer", products[0].Name)
	for _, p := range products {
		assert.True(t, p.TrackStock, "fetched products carry known stock")
		assert.Equal(t, 1, p.DisplayQty)
	}
}

func TestCreateOrder(t *testing.T) {
	client, _ := newTestClient(t)

	created := createTestOrder(t, client)

	assert.Equal(t, "order-abc", created.OrderID)
	assert.NotEmpty(t, created.CustomerID)
	assert.NotEmpty(t, created.Transaction.ID)
	assert.Equal(t, "order-abc", created.Transaction.OrderID)
	assert.Equal(t, int64(168000), created.Transaction.TotalAmount)
	assert.Equal(t, "PENDING", created.Transaction.PaymentStatus)
}

func TestCreateOrderRejectsDuplicateID(t *testing.T) {
	client, _ := newTestClient(t)
	createTestOrder(t, client)

	_, err := client.CreateOrder(context.Background(), NewOrderPayload{
		OrderID:    "order-abc",
		OrderItems: []order.Item{{ProductID: 1, Quantity: 1, Price: 84000}},
		Delivery: Delivery{
			Name: "Pepito Perez", Email: "pepito@example.com",
			Address: "somewhere", Phone: "300",
		},
	})

	var gErr *Error
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, 409, gErr.StatusCode)
	assert.Contains(t, gErr.Message, "already exists", "backend error body is surfaced")
}

func TestSubmitPayment(t *testing.T) {
	client, _ := newTestClient(t)
	created := createTestOrder(t, client)

	encoded, err := payment.EncodeCard(payment.MethodCard{
		HolderName: "Pepito Perez",
		Number:     "4111 1111 1111 1111",
		Expiry:     "12/28",
		CVV:        "123",
	})
	require.NoError(t, err)

	tx, err := client.SubmitPayment(context.Background(), CheckoutPayload{
		CreditCard:    encoded,
		CustomerID:    created.CustomerID,
		EmailHolder:   "pepito@example.com",
		TransactionID: created.Transaction.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, created.Transaction.ID, tx.ID)
	assert.Equal(t, "PEPITO PEREZ", tx.PayerName)
}

func TestSubmitPaymentRejectsBadCard(t *testing.T) {
	client, _ := newTestClient(t)
	created := createTestOrder(t, client)

	_, err := client.SubmitPayment(context.Background(), CheckoutPayload{
		CreditCard:    "not an encoded card",
		CustomerID:    created.CustomerID,
		EmailHolder:   "pepito@example.com",
		TransactionID: created.Transaction.ID,
	})

	var gErr *Error
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, 422, gErr.StatusCode)
}

func TestGetTransactionFollowsStatusScript(t *testing.T) {
	client, _ := newTestClient(t, "PENDING", "SUCCESS")
	created := createTestOrder(t, client)

	tx, err := client.GetTransaction(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPending, tx.Outcome())
	assert.Nil(t, tx.PaidAt)

	tx, err = client.GetTransaction(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentSuccess, tx.Outcome())
	assert.NotNil(t, tx.PaidAt)

	// The last script entry sticks
	tx, err = client.GetTransaction(context.Background(), created.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentSuccess, tx.Outcome())
}

func TestGetTransactionUnknownID(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetTransaction(context.Background(), "nope")

	var gErr *Error
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, 404, gErr.StatusCode)
}
