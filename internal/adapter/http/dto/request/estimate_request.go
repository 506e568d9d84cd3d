package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidCompletionDate = errors.New("invalid estimated_completion_date")

// CreateEstimateRequest is the payload for opening a new estimate. Totals are
// never accepted from callers; they are derived from line items.
type CreateEstimateRequest struct {
	CustomerID              string `json:"customer_id" binding:"required"`
	VehicleID               string `json:"vehicle_id" binding:"required"`
	InsuranceCompanyID      string `json:"insurance_company_id"`
	InsuranceClaimNumber    string `json:"insurance_claim_number"`
	Description             string `json:"description"`
	EstimatedCompletionDate string `json:"estimated_completion_date"`
}

func (r CreateEstimateRequest) ParseCompletionDate() (*time.Time, error) {
	return parseOptionalDate(r.EstimatedCompletionDate)
}

// UpdateEstimateRequest carries a partial update; absent fields stay
// untouched. An explicit empty estimated_completion_date clears the date.
type UpdateEstimateRequest struct {
	CustomerID              *string `json:"customer_id"`
	VehicleID               *string `json:"vehicle_id"`
	InsuranceCompanyID      *string `json:"insurance_company_id"`
	InsuranceClaimNumber    *string `json:"insurance_claim_number"`
	Description             *string `json:"description"`
	EstimatedCompletionDate *string `json:"estimated_completion_date"`
}

func (r UpdateEstimateRequest) ParseCompletionDate() (date *time.Time, clear bool, err error) {
	if r.EstimatedCompletionDate == nil {
		return nil, false, nil
	}
	if *r.EstimatedCompletionDate == "" {
		return nil, true, nil
	}
	d, err := parseOptionalDate(*r.EstimatedCompletionDate)
	return d, false, err
}

type RejectEstimateRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// AddPartRequest adds a part line. total_price is intentionally absent: it is
// always recomputed server-side.
type AddPartRequest struct {
	Name       string          `json:"name" binding:"required"`
	PartNumber string          `json:"part_number"`
	Quantity   int             `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Notes      string          `json:"notes"`
}

type UpdatePartRequest struct {
	Name       *string          `json:"name"`
	PartNumber *string          `json:"part_number"`
	Quantity   *int             `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Notes      *string          `json:"notes"`
}

type AddLabourRequest struct {
	Description string          `json:"description" binding:"required"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Notes       string          `json:"notes"`
}

type UpdateLabourRequest struct {
	Description *string          `json:"description"`
	Hours       *decimal.Decimal `json:"hours"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
	Notes       *string          `json:"notes"`
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidCompletionDate
}
