package gateway

import (
	"context"
	"fmt"
)

type BankTransferDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	Instructions  string
}

// BankTransfer is the manual settlement path: no provider call, no webhook.
// The order stays pending until an admin approves or rejects it.
type BankTransfer struct {
	details BankTransferDetails
}

func NewBankTransfer(details BankTransferDetails) *BankTransfer {
	return &BankTransfer{details: details}
}

func (g *BankTransfer) Name() string {
	return "banktransfer"
}

func (g *BankTransfer) Initiate(ctx context.Context, req *InitiateRequest) (*PaymentHandle, error) {
	instructions := fmt.Sprintf(
		"Transfer %.2f %s to %s, account %s (%s). Reference: %s. %s",
		req.Amount, req.Currency,
		g.details.BankName, g.details.AccountNumber, g.details.AccountName,
		req.OrderId.String(), g.details.Instructions,
	)
	return &PaymentHandle{
		GatewayRef:   req.OrderId.String(),
		Instructions: instructions,
	}, nil
}

func (g *BankTransfer) HandleCallback(ctx context.Context, payload []byte) (*CallbackResult, error) {
	return nil, fmt.Errorf("banktransfer: settlement is manual, no callback exists")
}
