package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayCredentials struct {
	Mode      Mode // razorpay separates modes by key pair
	KeyId     string
	KeySecret string
}

// Razorpay creates a provider-side order up front; the client widget settles
// it and posts back {order_id, payment_id, signature}, which we verify with
// the key secret before trusting the outcome.
type Razorpay struct {
	creds  RazorpayCredentials
	client *razorpay.Client
}

func NewRazorpay(creds RazorpayCredentials) *Razorpay {
	return &Razorpay{
		creds:  creds,
		client: razorpay.NewClient(creds.KeyId, creds.KeySecret),
	}
}

func (g *Razorpay) Name() string {
	return "razorpay"
}

func (g *Razorpay) Initiate(ctx context.Context, req *InitiateRequest) (*PaymentHandle, error) {
	data := map[string]interface{}{
		"amount":   int64(math.Round(req.Amount * 100)), // smallest unit
		"currency": req.Currency,
		"receipt":  req.OrderId.String(),
		"notes": map[string]interface{}{
			"order_ref": req.OrderId.String(),
		},
	}

	body, err := callWithTimeout(ctx, func() (map[string]interface{}, error) {
		return g.client.Order.Create(data, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}

	gatewayOrderId, _ := body["id"].(string)
	if gatewayOrderId == "" {
		return nil, fmt.Errorf("razorpay: order response missing id")
	}

	return &PaymentHandle{
		ClientToken: gatewayOrderId, // fed to the checkout widget
		GatewayRef:  gatewayOrderId,
	}, nil
}

type razorpayCallback struct {
	OrderRef          string `json:"order_ref"`
	RazorpayOrderId   string `json:"razorpay_order_id"`
	RazorpayPaymentId string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (g *Razorpay) HandleCallback(ctx context.Context, payload []byte) (*CallbackResult, error) {
	var cb razorpayCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		return nil, fmt.Errorf("razorpay: malformed callback: %w", err)
	}

	// signature = HMAC-SHA256(order_id + "|" + payment_id, key_secret)
	mac := hmac.New(sha256.New, []byte(g.creds.KeySecret))
	mac.Write([]byte(cb.RazorpayOrderId + "|" + cb.RazorpayPaymentId))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(cb.RazorpaySignature)) {
		return nil, fmt.Errorf("razorpay: invalid signature for order %s", cb.RazorpayOrderId)
	}

	return &CallbackResult{
		OrderRef:   cb.OrderRef,
		GatewayRef: cb.RazorpayOrderId,
		Outcome:    OutcomeSuccess,
		RawStatus:  "captured",
	}, nil
}
