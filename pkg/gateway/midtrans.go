package gateway

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type MidtransCredentials struct {
	Mode      Mode
	ServerKey string
	FinishURL string
}

// Midtrans charges through a hosted Snap page. The order id we send becomes
// the order_id Midtrans echoes back in its notification webhook.
type Midtrans struct {
	creds  MidtransCredentials
	client snap.Client
}

func NewMidtrans(creds MidtransCredentials) *Midtrans {
	env := midtrans.Sandbox
	if creds.Mode == ModeLive {
		env = midtrans.Production
	}
	var client snap.Client
	client.New(creds.ServerKey, env)
	return &Midtrans{
		creds:  creds,
		client: client,
	}
}

func (g *Midtrans) Name() string {
	return "midtrans"
}

func (g *Midtrans) Initiate(ctx context.Context, req *InitiateRequest) (*PaymentHandle, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderId.String(),
			GrossAmt: int64(req.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: g.creds.FinishURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderId.String(),
				Price: int64(req.Amount),
				Qty:   1,
				Name:  req.Description,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	resp, err := callWithTimeout(ctx, func() (*snap.Response, error) {
		r, snapErr := g.client.CreateTransaction(snapReq)
		if snapErr != nil {
			return nil, fmt.Errorf("midtrans: %s", snapErr.GetMessage())
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return &PaymentHandle{
		RedirectURL: resp.RedirectURL,
		ClientToken: resp.Token,
		GatewayRef:  req.OrderId.String(),
	}, nil
}

type midtransNotification struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	TransactionId     string `json:"transaction_id"`
}

func (g *Midtrans) HandleCallback(ctx context.Context, payload []byte) (*CallbackResult, error) {
	var n midtransNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("midtrans: malformed notification: %w", err)
	}

	// signature = SHA512(order_id + status_code + gross_amount + server_key)
	input := n.OrderId + n.StatusCode + n.GrossAmount + g.creds.ServerKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	if n.SignatureKey != expected {
		return nil, fmt.Errorf("midtrans: invalid signature for order %s", n.OrderId)
	}

	outcome := OutcomePending
	switch n.TransactionStatus {
	case "capture", "settlement":
		outcome = OutcomeSuccess
	case "deny", "cancel", "expire", "failure":
		outcome = OutcomeFailure
	}

	return &CallbackResult{
		OrderRef:   n.OrderId,
		GatewayRef: n.OrderId,
		Outcome:    outcome,
		RawStatus:  n.TransactionStatus,
	}, nil
}
