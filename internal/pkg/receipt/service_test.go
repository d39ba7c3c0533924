// internal/pkg/receipt/service_test.go
package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-client/internal/domain/order"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Completed", StatusLabel(order.PaymentSuccess))
	assert.Equal(t, "Pending", StatusLabel(order.PaymentPending))
	assert.Equal(t, "Failed", StatusLabel(order.PaymentFailed))
}

func TestFormatAmount(t *testing.T) {
	s := NewService("COP")

	assert.Equal(t, "2380.00 COP", s.FormatAmount(238000))
	assert.Equal(t, "0.50 COP", s.FormatAmount(50))
}

func TestRender(t *testing.T) {
	s := NewService("COP")
	created := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

	text := s.Render(&order.Transaction{
		OrderID:       "order-abc",
		PayerName:     "PEPITO PEREZ",
		Description:   "Credit card payment for order order-abc",
		PaymentStatus: "SUCCESS",
		TotalAmount:   238000,
		CreatedAt:     created,
	})

	lines := strings.Split(text, "\n")
	assert.Equal(t, "PAYMENT RECEIPT", lines[0])
	assert.Contains(t, text, "Reference: order-abc")
	assert.Contains(t, text, "Status: Completed")
	assert.Contains(t, text, "Amount: 2380.00 COP")
	assert.Contains(t, text, "Method: Credit Card")
	assert.Contains(t, text, "Payer: PEPITO PEREZ")
	assert.Contains(t, text, "Date: "+created.Format(time.RFC1123))
}

func TestRenderFillsMissingFields(t *testing.T) {
	s := NewService("COP")

	text := s.Render(&order.Transaction{
		OrderID:       "order-abc",
		PaymentStatus: "PENDING",
	})

	assert.Contains(t, text, "Status: Pending")
	assert.NotContains(t, text, "Payer: \n")
}
