package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type StripeCredentials struct {
	Mode       Mode // informational: stripe separates modes by key prefix
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// Stripe charges through a hosted Checkout Session. Our order id travels as
// the session's client_reference_id; the return callback carries the session
// id, which we verify against the Stripe API instead of trusting the client.
type Stripe struct {
	creds StripeCredentials
	api   *client.API
}

func NewStripe(creds StripeCredentials) *Stripe {
	api := &client.API{}
	api.Init(creds.SecretKey, nil)
	return &Stripe{
		creds: creds,
		api:   api,
	}
}

func (g *Stripe) Name() string {
	return "stripe"
}

func (g *Stripe) Initiate(ctx context.Context, req *InitiateRequest) (*PaymentHandle, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.OrderId.String()),
		CustomerEmail:     stripe.String(req.CustomerEmail),
		SuccessURL:        stripe.String(g.creds.SuccessURL),
		CancelURL:         stripe.String(g.creds.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
	}
	params.Context = callCtx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	return &PaymentHandle{
		RedirectURL: sess.URL,
		GatewayRef:  sess.ID,
	}, nil
}

type stripeCallback struct {
	SessionId string `json:"session_id"`
}

func (g *Stripe) HandleCallback(ctx context.Context, payload []byte) (*CallbackResult, error) {
	var cb stripeCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		return nil, fmt.Errorf("stripe: malformed callback: %w", err)
	}
	if cb.SessionId == "" {
		return nil, fmt.Errorf("stripe: callback missing session_id")
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{}
	params.Context = callCtx
	sess, err := g.api.CheckoutSessions.Get(cb.SessionId, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: fetch session %s: %w", cb.SessionId, err)
	}

	outcome := OutcomeFailure
	switch sess.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		outcome = OutcomeSuccess
	case stripe.CheckoutSessionPaymentStatusUnpaid:
		if sess.Status == stripe.CheckoutSessionStatusOpen {
			outcome = OutcomePending
		}
	}

	return &CallbackResult{
		OrderRef:   sess.ClientReferenceID,
		GatewayRef: sess.ID,
		Outcome:    outcome,
		RawStatus:  string(sess.PaymentStatus),
	}, nil
}
