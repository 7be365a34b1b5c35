package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func midtransSignature(orderId, statusCode, grossAmount, serverKey string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+serverKey)))
}

func TestMidtransCallbackVerification(t *testing.T) {
	g := NewMidtrans(MidtransCredentials{Mode: ModeSandbox, ServerKey: "test-server-key"})
	orderId := uuid.New().String()

	makePayload := func(status, signature string) []byte {
		payload, _ := json.Marshal(map[string]string{
			"order_id":           orderId,
			"status_code":        "200",
			"gross_amount":       "100000.00",
			"signature_key":      signature,
			"transaction_status": status,
		})
		return payload
	}

	t.Run("valid settlement", func(t *testing.T) {
		sig := midtransSignature(orderId, "200", "100000.00", "test-server-key")
		res, err := g.HandleCallback(context.Background(), makePayload("settlement", sig))
		require.NoError(t, err)
		assert.Equal(t, OutcomeSuccess, res.Outcome)
		assert.Equal(t, orderId, res.OrderRef)
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		_, err := g.HandleCallback(context.Background(), makePayload("settlement", "bogus"))
		assert.Error(t, err)
	})

	t.Run("expire maps to failure", func(t *testing.T) {
		sig := midtransSignature(orderId, "200", "100000.00", "test-server-key")
		res, err := g.HandleCallback(context.Background(), makePayload("expire", sig))
		require.NoError(t, err)
		assert.Equal(t, OutcomeFailure, res.Outcome)
	})

	t.Run("pending maps to pending", func(t *testing.T) {
		sig := midtransSignature(orderId, "200", "100000.00", "test-server-key")
		res, err := g.HandleCallback(context.Background(), makePayload("pending", sig))
		require.NoError(t, err)
		assert.Equal(t, OutcomePending, res.Outcome)
	})
}

func TestRazorpayCallbackVerification(t *testing.T) {
	g := NewRazorpay(RazorpayCredentials{Mode: ModeSandbox, KeyId: "rzp_test_key", KeySecret: "secret"})
	orderRef := uuid.New().String()

	sign := func(orderId, paymentId string) string {
		mac := hmac.New(sha256.New, []byte("secret"))
		mac.Write([]byte(orderId + "|" + paymentId))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("valid signature", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]string{
			"order_ref":           orderRef,
			"razorpay_order_id":   "order_123",
			"razorpay_payment_id": "pay_456",
			"razorpay_signature":  sign("order_123", "pay_456"),
		})
		res, err := g.HandleCallback(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, OutcomeSuccess, res.Outcome)
		assert.Equal(t, orderRef, res.OrderRef)
		assert.Equal(t, "order_123", res.GatewayRef)
	})

	t.Run("signature over different ids rejected", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]string{
			"order_ref":           orderRef,
			"razorpay_order_id":   "order_123",
			"razorpay_payment_id": "pay_456",
			"razorpay_signature":  sign("order_999", "pay_456"),
		})
		_, err := g.HandleCallback(context.Background(), payload)
		assert.Error(t, err)
	})
}

func TestBankTransferIsManual(t *testing.T) {
	g := NewBankTransfer(BankTransferDetails{
		BankName:      "First National",
		AccountName:   "WorkSuite Ltd",
		AccountNumber: "000111222",
	})

	handle, err := g.Initiate(context.Background(), &InitiateRequest{
		OrderId:  uuid.New(),
		Amount:   49.99,
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.Empty(t, handle.RedirectURL)
	assert.NotEmpty(t, handle.Instructions)

	_, err = g.HandleCallback(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(NewBankTransfer(BankTransferDetails{}))
	r.Register(NewMidtrans(MidtransCredentials{ServerKey: "k"}))

	g, err := r.Resolve("banktransfer")
	require.NoError(t, err)
	assert.Equal(t, "banktransfer", g.Name())

	_, err = r.Resolve("paypal")
	assert.Error(t, err)

	assert.Equal(t, []string{"banktransfer", "midtrans"}, r.Names())
}
