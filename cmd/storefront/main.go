// cmd/storefront/main.go
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/checkout"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/payment"
	"github.com/your-org/storefront-client/internal/domain/shipping"
	"github.com/your-org/storefront-client/internal/gateway"
	"github.com/your-org/storefront-client/internal/pkg/logger"
	"github.com/your-org/storefront-client/internal/pkg/receipt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("🚀 Starting %s v%s", cfg.App.Name, cfg.App.Version)

	ctx := context.Background()
	client := gateway.NewClient(cfg, appLog)

	// Fetch the catalog into the local stock ledger
	products, err := client.FetchProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch catalog: %v", err)
	}

	stock := catalog.NewStockLedger()
	stock.Load(products)
	appLog.Infof("Catalog loaded: %d products", stock.Len())

	if stock.Len() == 0 {
		log.Fatal("Catalog is empty, nothing to buy")
	}

	wf := checkout.NewWorkflow(cfg, appLog, client, cart.NewLedger(), stock)

	// Add the first two products the way a shopper would
	first := stock.Products()[0]
	line := wf.AddToCart(first, 2)
	appLog.Infof("Added %q x%d to cart", line.Product.Name, line.Quantity)

	if stock.Len() > 1 {
		second := stock.Products()[1]
		line = wf.AddToCart(second, 1)
		appLog.Infof("Added %q x%d to cart", line.Product.Name, line.Quantity)
	}

	// Collect card and shipping details
	err = wf.SubmitDetails(
		payment.MethodCard{
			HolderName: "Pepito Perez",
			Number:     "4111 1111 1111 1111",
			Expiry:     "12/28",
			CVV:        "123",
		},
		shipping.Info{
			Name:       "Pepito Perez",
			Email:      "pepito@example.com",
			Phone:      "+57 300 000 0000",
			Address:    "Calle 12 #34-56",
			City:       "Bogota",
			State:      "Cundinamarca",
			PostalCode: "110111",
			Country:    "COL",
		},
	)
	if err != nil {
		log.Fatalf("Checkout details rejected: %v", err)
	}

	totals := wf.Totals()
	receipts := receipt.NewService(cfg.Checkout.Currency)
	appLog.Infof("Cart review: %d lines, subtotal %s, tax %s, total %s",
		totals.ItemCount,
		receipts.FormatAmount(totals.SubTotal),
		receipts.FormatAmount(totals.TaxAmount),
		receipts.FormatAmount(totals.TotalAmount),
	)

	// Confirm: create the order and submit payment
	created, err := wf.ConfirmOrder(ctx)
	if err != nil {
		log.Fatalf("Checkout failed: %v", err)
	}
	appLog.Infof("Order %s created, transaction %s", created.OrderID, created.Transaction.ID)

	// Poll until the payment settles
	tx, outcome, err := wf.AwaitSettlement(ctx)
	if err != nil {
		log.Fatalf("Payment did not settle: %v", err)
	}

	switch outcome {
	case order.PaymentSuccess:
		appLog.Info("✅ Payment confirmed")
	default:
		appLog.Warnf("Payment ended as %s", outcome)
	}

	fmt.Println()
	fmt.Println(receipts.Render(tx))
	fmt.Println()

	for _, p := range wf.Stock().Products() {
		appLog.Infof("Stock after sale: %q → %d", p.Name, p.Stock)
	}
}
