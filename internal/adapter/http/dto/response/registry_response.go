package response

import (
	"encoding/json"
	"time"

	"autonova/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Registry entities serialize directly; these aliases keep the handler layer
// symmetric with the estimate responses.

type CustomerResponse = entities.Customer

type VehicleResponse = entities.Vehicle

type InsuranceCompanyResponse = entities.InsuranceCompany

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
	}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type PaymentResponse struct {
	ID                string          `json:"id"`
	EstimateNumber    string          `json:"estimate_number"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func FromPayment(p entities.EstimatePayment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		EstimateNumber:    p.EstimateNumber,
		Amount:            p.Amount,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderResponse:  p.ProviderResponse,
		CreatedAt:         p.CreatedAt,
	}
}
