// internal/domain/checkout/workflow.go
package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/payment"
	"github.com/your-org/storefront-client/internal/domain/shipping"
	"github.com/your-org/storefront-client/internal/gateway"
)

// State is the current step of the checkout state machine. It gates which
// operations and gateway calls are valid.
type State int

const (
	StateIdle State = iota
	StateCollectingDetails
	StateReviewingCart
	StateSubmittingOrder
	StateAwaitingPaymentResult
	StateSettledSuccess
	StateSettledFailed
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollectingDetails:
		return "collecting_details"
	case StateReviewingCart:
		return "reviewing_cart"
	case StateSubmittingOrder:
		return "submitting_order"
	case StateAwaitingPaymentResult:
		return "awaiting_payment_result"
	case StateSettledSuccess:
		return "settled_success"
	case StateSettledFailed:
		return "settled_failed"
	default:
		return "unknown"
	}
}

// Gateway is the external service boundary the workflow drives. Implemented
// by gateway.Client; tests substitute fakes.
type Gateway interface {
	CreateOrder(ctx context.Context, payload gateway.NewOrderPayload) (*gateway.NewOrderResponse, error)
	SubmitPayment(ctx context.Context, payload gateway.CheckoutPayload) (*order.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*order.Transaction, error)
}

// Workflow sequences the steps from "cart has items" to "payment resolved"
// and owns the shared checkout state: the cart and stock ledgers plus the
// collected card and shipping details. It is the only component allowed to
// reconcile stock or clear the cart, and it does each exactly once per
// settled order.
//
// All methods must be called from one goroutine; asynchronous gateway results
// are handled by the caller re-invoking CheckPayment.
type Workflow struct {
	cfg *config.Config
	log *logrus.Logger
	gw  Gateway

	cart  *cart.Ledger
	stock *catalog.StockLedger

	state       State
	shippingTo  shipping.Info
	encodedCard string

	processing bool
	current    *gateway.NewOrderResponse

	// generation invalidates in-flight results: Abandon bumps it, and a
	// poll whose generation no longer matches is discarded.
	generation uint64

	// reconciled tracks which order ids already had their one-time stock
	// reconciliation, so repeated success polls cannot decrement twice.
	reconciled map[string]bool
}

// NewWorkflow creates a checkout workflow over the given ledgers
func NewWorkflow(cfg *config.Config, log *logrus.Logger, gw Gateway, cartLedger *cart.Ledger, stockLedger *catalog.StockLedger) *Workflow {
	return &Workflow{
		cfg:        cfg,
		log:        log,
		gw:         gw,
		cart:       cartLedger,
		stock:      stockLedger,
		state:      StateIdle,
		reconciled: make(map[string]bool),
	}
}

// State returns the current workflow state
func (w *Workflow) State() State {
	return w.state
}

// Cart exposes the cart ledger for review-time quantity edits
func (w *Workflow) Cart() *cart.Ledger {
	return w.cart
}

// Stock exposes the stock ledger snapshot
func (w *Workflow) Stock() *catalog.StockLedger {
	return w.stock
}

// Order returns the order created by the last confirmation, if any
func (w *Workflow) Order() *gateway.NewOrderResponse {
	return w.current
}

// Totals computes the cart totals with the configured tax rate
func (w *Workflow) Totals() cart.Totals {
	return w.cart.Totals(w.cfg.Checkout.TaxRate)
}

// AddToCart merges a product into the cart. The first add while idle starts
// the checkout flow by moving to detail collection.
func (w *Workflow) AddToCart(p catalog.Product, quantity int) cart.Line {
	line := w.cart.Add(p, quantity)

	if w.state == StateIdle && w.cart.Len() > 0 {
		w.transition(StateCollectingDetails)
	}
	return line
}

// SubmitDetails validates the card and shipping forms together. Both must
// pass before anything is stored; on failure the state is unchanged and no
// partial data is kept. On success the card is encoded and held with the
// shipping info for the later payment submission.
func (w *Workflow) SubmitDetails(card payment.MethodCard, info shipping.Info) error {
	switch w.state {
	case StateCollectingDetails, StateReviewingCart:
	default:
		return &StateError{Op: "submit details", State: w.state}
	}

	if err := card.Validate(); err != nil {
		return &ValidationError{Reason: err}
	}
	if err := info.Validate(); err != nil {
		return &ValidationError{Reason: err}
	}

	encoded, err := payment.EncodeCard(card)
	if err != nil {
		return &ValidationError{Reason: err}
	}

	w.encodedCard = encoded
	w.shippingTo = info
	w.transition(StateReviewingCart)
	return nil
}

// ConfirmOrder is the explicit "checkout" confirmation. It creates the order
// from the cart snapshot and immediately submits payment for it. A failure in
// either call reverts to cart review and is retriable; nothing is charged to
// the local ledgers. While a confirmation is in flight further confirmations
// are rejected with ErrBusy.
func (w *Workflow) ConfirmOrder(ctx context.Context) (*gateway.NewOrderResponse, error) {
	if w.processing {
		return nil, ErrBusy
	}
	if w.state != StateReviewingCart {
		return nil, &StateError{Op: "confirm order", State: w.state}
	}
	if w.cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	w.processing = true
	defer func() { w.processing = false }()

	w.transition(StateSubmittingOrder)

	orderID := uuid.NewString()
	payload := gateway.NewOrderPayload{
		OrderID:    orderID,
		OrderItems: w.orderItems(),
		Delivery: gateway.Delivery{
			Name:    w.shippingTo.Name,
			Email:   w.shippingTo.Email,
			Address: w.shippingTo.DeliveryAddress(),
			Phone:   w.shippingTo.Phone,
		},
	}

	created, err := w.gw.CreateOrder(ctx, payload)
	if err != nil {
		w.transition(StateReviewingCart)
		return nil, &GatewayError{Op: "order creation", Err: err}
	}

	_, err = w.gw.SubmitPayment(ctx, gateway.CheckoutPayload{
		CreditCard:    w.encodedCard,
		CustomerID:    created.CustomerID,
		EmailHolder:   w.shippingTo.Email,
		TransactionID: created.Transaction.ID,
	})
	if err != nil {
		w.transition(StateReviewingCart)
		return nil, &GatewayError{Op: "payment submission", Err: err}
	}

	w.current = created
	w.transition(StateAwaitingPaymentResult)

	w.log.WithFields(logrus.Fields{
		"order_id":       created.OrderID,
		"transaction_id": created.Transaction.ID,
	}).Info("Order submitted, awaiting payment result")
	return created, nil
}

// CheckPayment fetches the current transaction once and settles the workflow
// if the payment resolved. A success outcome reconciles the stock ledger with
// the purchased cart lines and clears the cart, exactly once per order id no
// matter how often the transaction is queried afterwards. A failed outcome
// settles without touching stock or cart. Pending leaves the workflow
// awaiting a later poll.
func (w *Workflow) CheckPayment(ctx context.Context) (*order.Transaction, order.PaymentOutcome, error) {
	switch w.state {
	case StateAwaitingPaymentResult, StateSettledSuccess, StateSettledFailed:
	default:
		return nil, order.PaymentFailed, &StateError{Op: "check payment", State: w.state}
	}
	if w.current == nil {
		return nil, order.PaymentFailed, ErrNoOrder
	}

	gen := w.generation
	tx, err := w.gw.GetTransaction(ctx, w.current.Transaction.ID)
	if err != nil {
		return nil, order.PaymentFailed, &PollError{Err: err}
	}
	if w.generation != gen {
		// The workflow was abandoned while the lookup was in flight;
		// the result no longer has a home.
		return nil, order.PaymentFailed, ErrStaleResult
	}

	outcome := tx.Outcome()
	switch outcome {
	case order.PaymentSuccess:
		w.settleSuccess(tx)
	case order.PaymentFailed:
		w.transition(StateSettledFailed)
		w.log.WithFields(logrus.Fields{
			"order_id": tx.OrderID,
			"status":   tx.PaymentStatus,
		}).Warn("Payment failed")
	case order.PaymentPending:
		// Stay awaiting; the caller re-polls.
	}

	return tx, outcome, nil
}

// AwaitSettlement polls CheckPayment until the payment leaves the pending
// state, up to the configured attempt limit with the configured interval
// between polls. The source UI polls once per view; this helper is for
// headless callers that want a bounded wait instead.
func (w *Workflow) AwaitSettlement(ctx context.Context) (*order.Transaction, order.PaymentOutcome, error) {
	var (
		tx      *order.Transaction
		outcome order.PaymentOutcome
		err     error
	)

	for attempt := 1; attempt <= w.cfg.Checkout.PollMaxAttempts; attempt++ {
		tx, outcome, err = w.CheckPayment(ctx)
		if err != nil {
			return nil, outcome, err
		}
		if outcome != order.PaymentPending {
			return tx, outcome, nil
		}

		if attempt == w.cfg.Checkout.PollMaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, outcome, ctx.Err()
		case <-time.After(w.cfg.Checkout.PollInterval):
		}
	}

	return tx, outcome, ErrPollExhausted
}

// Abandon drops the workflow state for the current step, e.g. when the
// shopper closes the checkout view. An in-flight gateway call is not
// cancelled, but its result is discarded when it lands. The cart and any
// collected details survive, so checkout can resume where it makes sense.
func (w *Workflow) Abandon() {
	w.generation++
	w.current = nil
	w.processing = false

	switch {
	case w.cart.Len() == 0:
		w.transition(StateIdle)
	case w.encodedCard != "":
		w.transition(StateReviewingCart)
	default:
		w.transition(StateCollectingDetails)
	}
}

// orderItems maps the cart lines to order items
func (w *Workflow) orderItems() []order.Item {
	lines := w.cart.Lines()
	items := make([]order.Item, len(lines))
	for i, line := range lines {
		items[i] = order.Item{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		}
	}
	return items
}

// settleSuccess performs the one-time side effects of a confirmed sale
func (w *Workflow) settleSuccess(tx *order.Transaction) {
	if !w.reconciled[w.current.OrderID] {
		w.reconciled[w.current.OrderID] = true
		w.stock.Reconcile(w.cart.Sales())
		w.cart.Clear()

		w.log.WithFields(logrus.Fields{
			"order_id": w.current.OrderID,
			"amount":   tx.TotalAmount,
		}).Info("Payment confirmed, stock reconciled and cart cleared")
	}
	w.transition(StateSettledSuccess)
}

func (w *Workflow) transition(next State) {
	if w.state == next {
		return
	}
	w.log.WithFields(logrus.Fields{
		"from": w.state.String(),
		"to":   next.String(),
	}).Debug("Checkout state transition")
	w.state = next
}
