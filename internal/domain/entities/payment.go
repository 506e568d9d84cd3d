package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the provider-side outcome of a deposit payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// EstimatePayment is a customer deposit captured against an approved
// estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_number-index): estimate_number
//
// Provider payload:
//   - ProviderResponse keeps the raw gateway response (JSON) for audit;
//     the amount charged is always the estimate's grand total at capture time.
type EstimatePayment struct {
	ID                string          `json:"id"`
	EstimateNumber    string          `json:"estimate_number"`
	Amount            decimal.Decimal `json:"amount"`
	Status            PaymentStatus   `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
