package dto

// --- Settings ---

type UpdateSettingsRequest struct {
	Group    string            `json:"group" validate:"required"`
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type SettingsResponse struct {
	Group    string            `json:"group"`
	Settings map[string]string `json:"settings"`
}

// PaymentMethodSettingsRequest enables one gateway and stores its
// credentials under the matching settings group.
type PaymentMethodSettingsRequest struct {
	Method      string            `json:"method" validate:"required,oneof=stripe razorpay midtrans banktransfer"`
	Enabled     bool              `json:"enabled"`
	Mode        string            `json:"mode" validate:"omitempty,oneof=sandbox live"`
	Credentials map[string]string `json:"credentials"`
}

// --- Dashboard ---

type DashboardResponse struct {
	TotalCompanies      int64   `json:"total_companies"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	PendingOrders       int64   `json:"pending_orders"`
	PendingRequests     int64   `json:"pending_requests"`
	TotalRevenue        float64 `json:"total_revenue"`
	RevenueLabel        string  `json:"revenue_label"` // formatted in the default currency
}

// --- Shared listing ---

type ListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

type ListMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
