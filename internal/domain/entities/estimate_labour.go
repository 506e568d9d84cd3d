package entities

import "github.com/shopspring/decimal"

// EstimateLabour is a labour line owned by exactly one estimate.
//
// TotalCost is always Hours x HourlyRate and recomputed on every change.
// Unlike parts, labour may never be free: the hourly rate must be strictly
// positive.
type EstimateLabour struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Notes       string          `json:"notes,omitempty"`
}

func (l EstimateLabour) validate() error {
	if l.Description == "" {
		return NewValidationError("description", "must not be empty")
	}
	if !l.Hours.IsPositive() {
		return NewValidationError("hours", "must be greater than 0")
	}
	if !l.HourlyRate.IsPositive() {
		return NewValidationError("hourly_rate", "must be greater than 0")
	}
	return nil
}

func (l EstimateLabour) computeTotal() decimal.Decimal {
	return l.Hours.Mul(l.HourlyRate).RoundBank(2)
}

// LabourUpdate carries a partial update; nil fields are left untouched.
type LabourUpdate struct {
	Description *string
	Hours       *decimal.Decimal
	HourlyRate  *decimal.Decimal
	Notes       *string
}

func (u LabourUpdate) applyTo(l *EstimateLabour) {
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Hours != nil {
		l.Hours = *u.Hours
	}
	if u.HourlyRate != nil {
		l.HourlyRate = *u.HourlyRate
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
}
