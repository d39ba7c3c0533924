// internal/pkg/receipt/service.go
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/your-org/storefront-client/internal/domain/order"
)

// Service renders plain-text payment receipts
type Service struct {
	currency string
}

// NewService creates a receipt service for the given currency label
func NewService(currency string) *Service {
	return &Service{currency: currency}
}

// StatusLabel returns the shopper-facing label for a payment outcome
func StatusLabel(outcome order.PaymentOutcome) string {
	switch outcome {
	case order.PaymentSuccess:
		return "Completed"
	case order.PaymentPending:
		return "Pending"
	default:
		return "Failed"
	}
}

// Render builds the receipt text for a transaction. The order id doubles as
// the payment reference.
func (s *Service) Render(tx *order.Transaction) string {
	payer := tx.PayerName
	if payer == "" {
		payer = "—"
	}
	description := tx.Description
	if description == "" {
		description = "—"
	}

	lines := []string{
		"PAYMENT RECEIPT",
		"====================",
		fmt.Sprintf("Reference: %s", tx.OrderID),
		fmt.Sprintf("Status: %s", StatusLabel(tx.Outcome())),
		fmt.Sprintf("Amount: %s", s.FormatAmount(tx.TotalAmount)),
		"Method: Credit Card",
		fmt.Sprintf("Payer: %s", payer),
		fmt.Sprintf("Description: %s", description),
		fmt.Sprintf("Date: %s", tx.CreatedAt.Format(time.RFC1123)),
	}

	return strings.Join(lines, "\n")
}

// FormatAmount renders a minor-unit amount with the currency label
func (s *Service) FormatAmount(amount int64) string {
	return fmt.Sprintf("%.2f %s", float64(amount)/100, s.currency)
}
