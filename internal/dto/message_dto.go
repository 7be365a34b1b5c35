package dto

// BillingEmailMessage is the payload queued for the email worker.
type BillingEmailMessage struct {
	Kind      string `json:"kind"` // trial_started, order_completed, order_rejected, request_decided
	To        string `json:"to"`
	PlanName  string `json:"plan_name"`
	Amount    string `json:"amount,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Decision  string `json:"decision,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
