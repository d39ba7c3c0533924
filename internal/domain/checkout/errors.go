// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart blocks order confirmation when no line is in the cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrBusy rejects a re-entrant confirmation while one is in flight
	ErrBusy = errors.New("checkout already in progress")

	// ErrStaleResult marks a gateway result that resolved after the
	// workflow abandoned the step it belonged to; the result is discarded.
	ErrStaleResult = errors.New("transaction result arrived after the workflow moved on")

	// ErrNoOrder means payment status was checked before an order existed
	ErrNoOrder = errors.New("no order has been submitted")

	// ErrPollExhausted means AwaitSettlement hit its attempt ceiling with
	// the payment still pending
	ErrPollExhausted = errors.New("payment still pending after polling limit")
)

// ValidationError reports incomplete card or shipping details. It blocks the
// transition to cart review and leaves all state untouched; the message is
// meant for the shopper.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// GatewayError reports a rejected order creation or payment submission. The
// workflow reverts to cart review; the shopper may retry.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s rejected: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// PollError reports a failed transaction lookup. Non-fatal: the workflow
// stays where it is and the shopper may check again.
type PollError struct {
	Err error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("transaction lookup failed: %v", e.Err)
}

func (e *PollError) Unwrap() error { return e.Err }

// StateError reports an operation invoked in a workflow state that does not
// permit it
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.Op, e.State)
}
