package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeSandbox Mode = "sandbox"
	ModeLive    Mode = "live"
)

// callTimeout bounds every outbound gateway call so a slow provider cannot
// hang the checkout request.
const callTimeout = 30 * time.Second

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePending Outcome = "pending"
)

// InitiateRequest is the normalized charge request every adapter receives.
type InitiateRequest struct {
	OrderId       uuid.UUID
	Amount        float64
	Currency      string
	Description   string
	CustomerName  string
	CustomerEmail string
}

// PaymentHandle is whatever the provider hands back to continue the payment:
// a hosted-page redirect, a client token, or both.
type PaymentHandle struct {
	RedirectURL  string
	ClientToken  string
	GatewayRef   string // provider-side reference (session id, order id, txn id)
	Instructions string // manual methods only
}

// CallbackResult is the verified interpretation of a raw callback payload.
type CallbackResult struct {
	OrderRef   string // our PlanOrder id, as reported back by the provider
	GatewayRef string // provider-side reference, cross-checked against the stored order
	Outcome    Outcome
	RawStatus  string
}

// Gateway is the integration boundary to one payment processor. Adapters own
// their typed credential struct and verify callback authenticity themselves.
type Gateway interface {
	Name() string
	Initiate(ctx context.Context, req *InitiateRequest) (*PaymentHandle, error)
	HandleCallback(ctx context.Context, payload []byte) (*CallbackResult, error)
}

// callWithTimeout runs a blocking SDK call (most vendor SDKs ignore contexts)
// and abandons it when the deadline passes.
func callWithTimeout[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{value: v, err: err}
	}()

	select {
	case res := <-ch:
		return res.value, res.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("gateway call timed out: %w", ctx.Err())
	}
}
