package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a repair estimate.
//
// Domain notes:
//   - pending is the only mutable state: line items and core fields may change.
//   - approved and rejected are terminal; nothing transitions out of them.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// TaxRate is the flat tax applied on top of parts + labour.
var TaxRate = decimal.RequireFromString("0.10")

// Estimate is the repair estimate aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: estimate_number (EST-YYYYMMDD-NNNN, unique, sortable by issue date)
//   - Part and Labour lines are embedded lists on the same item, so every
//     line mutation plus the recalculated totals commits in one write.
//
// Monetary representation:
//   - All money is decimal.Decimal with 2 fraction digits. The four totals are
//     derived from the line collections and never set directly.
type Estimate struct {
	EstimateNumber          string           `json:"estimate_number"`
	CustomerID              string           `json:"customer_id"`
	VehicleID               string           `json:"vehicle_id"`
	InsuranceCompanyID      string           `json:"insurance_company_id,omitempty"`
	InsuranceClaimNumber    string           `json:"insurance_claim_number,omitempty"`
	Description             string           `json:"description,omitempty"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date,omitempty"`
	Status                  EstimateStatus   `json:"status"`
	Parts                   []EstimatePart   `json:"parts"`
	Labour                  []EstimateLabour `json:"labour"`
	PartsTotal              decimal.Decimal  `json:"parts_total"`
	LabourTotal             decimal.Decimal  `json:"labour_total"`
	TaxAmount               decimal.Decimal  `json:"tax_amount"`
	GrandTotal              decimal.Decimal  `json:"grand_total"`
	ApprovedBy              string           `json:"approved_by,omitempty"`
	ApprovedAt              *time.Time       `json:"approved_at,omitempty"`
	RejectionReason         string           `json:"rejection_reason,omitempty"`
	CreatedBy               string           `json:"created_by"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`

	// Version guards against lost updates: every save is conditional on the
	// stored version matching this one.
	Version int64 `json:"version"`
}

// NewEstimate builds a pending estimate with zeroed totals.
func NewEstimate(number, customerID, vehicleID, createdBy string, now time.Time) Estimate {
	zero := decimal.Zero.Round(2)
	return Estimate{
		EstimateNumber: number,
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		Status:         EstimateStatusPending,
		PartsTotal:     zero,
		LabourTotal:    zero,
		TaxAmount:      zero,
		GrandTotal:     zero,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}
}

// EnsureMutable returns an InvalidStateError unless the estimate is pending.
// Every core-field or line mutation, and deletion, goes through this gate.
func (e *Estimate) EnsureMutable(operation string) error {
	if e.Status != EstimateStatusPending {
		return NewInvalidStateError(operation, e.Status)
	}
	return nil
}

// Approve transitions pending -> approved, recording the acting user and
// clearing any prior rejection reason. Terminal states refuse the transition.
func (e *Estimate) Approve(actorID string, now time.Time) error {
	if e.Status != EstimateStatusPending {
		return NewInvalidStateError("approve", e.Status)
	}
	e.Status = EstimateStatusApproved
	e.ApprovedBy = actorID
	e.ApprovedAt = &now
	e.RejectionReason = ""
	e.UpdatedAt = now
	return nil
}

// Reject transitions pending -> rejected with a free-text reason (may be
// empty). The acting user and timestamp are recorded the same way as approval.
func (e *Estimate) Reject(actorID, reason string, now time.Time) error {
	if e.Status != EstimateStatusPending {
		return NewInvalidStateError("reject", e.Status)
	}
	e.Status = EstimateStatusRejected
	e.ApprovedBy = actorID
	e.ApprovedAt = &now
	e.RejectionReason = reason
	e.UpdatedAt = now
	return nil
}

// CalculateTotals recomputes the four derived monetary fields from the current
// line collections. Tax is a flat 10% on parts + labour, rounded to 2 digits
// with banker's rounding (round-half-to-even).
func (e *Estimate) CalculateTotals() {
	parts := decimal.Zero
	for _, p := range e.Parts {
		parts = parts.Add(p.TotalPrice)
	}
	labour := decimal.Zero
	for _, l := range e.Labour {
		labour = labour.Add(l.TotalCost)
	}

	e.PartsTotal = parts.Round(2)
	e.LabourTotal = labour.Round(2)
	e.TaxAmount = parts.Add(labour).Mul(TaxRate).RoundBank(2)
	e.GrandTotal = e.PartsTotal.Add(e.LabourTotal).Add(e.TaxAmount)
}

// AddPart validates and appends a part line, then recalculates totals.
func (e *Estimate) AddPart(p EstimatePart, now time.Time) error {
	if err := e.EnsureMutable("add part to"); err != nil {
		return err
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.TotalPrice = p.computeTotal()
	e.Parts = append(e.Parts, p)
	e.touch(now)
	return nil
}

// UpdatePart applies a partial update to the part with the given id.
func (e *Estimate) UpdatePart(partID string, upd PartUpdate, now time.Time) (EstimatePart, error) {
	if err := e.EnsureMutable("update part of"); err != nil {
		return EstimatePart{}, err
	}
	for i := range e.Parts {
		if e.Parts[i].ID != partID {
			continue
		}
		p := e.Parts[i]
		upd.applyTo(&p)
		if err := p.validate(); err != nil {
			return EstimatePart{}, err
		}
		p.TotalPrice = p.computeTotal()
		e.Parts[i] = p
		e.touch(now)
		return p, nil
	}
	return EstimatePart{}, NewNotFoundError("part", partID)
}

// RemovePart deletes the part with the given id and recalculates totals.
func (e *Estimate) RemovePart(partID string, now time.Time) error {
	if err := e.EnsureMutable("remove part from"); err != nil {
		return err
	}
	for i := range e.Parts {
		if e.Parts[i].ID == partID {
			e.Parts = append(e.Parts[:i], e.Parts[i+1:]...)
			e.touch(now)
			return nil
		}
	}
	return NewNotFoundError("part", partID)
}

// AddLabour validates and appends a labour line, then recalculates totals.
func (e *Estimate) AddLabour(l EstimateLabour, now time.Time) error {
	if err := e.EnsureMutable("add labour to"); err != nil {
		return err
	}
	if err := l.validate(); err != nil {
		return err
	}
	l.TotalCost = l.computeTotal()
	e.Labour = append(e.Labour, l)
	e.touch(now)
	return nil
}

// UpdateLabour applies a partial update to the labour line with the given id.
func (e *Estimate) UpdateLabour(labourID string, upd LabourUpdate, now time.Time) (EstimateLabour, error) {
	if err := e.EnsureMutable("update labour of"); err != nil {
		return EstimateLabour{}, err
	}
	for i := range e.Labour {
		if e.Labour[i].ID != labourID {
			continue
		}
		l := e.Labour[i]
		upd.applyTo(&l)
		if err := l.validate(); err != nil {
			return EstimateLabour{}, err
		}
		l.TotalCost = l.computeTotal()
		e.Labour[i] = l
		e.touch(now)
		return l, nil
	}
	return EstimateLabour{}, NewNotFoundError("labour", labourID)
}

// RemoveLabour deletes the labour line with the given id and recalculates totals.
func (e *Estimate) RemoveLabour(labourID string, now time.Time) error {
	if err := e.EnsureMutable("remove labour from"); err != nil {
		return err
	}
	for i := range e.Labour {
		if e.Labour[i].ID == labourID {
			e.Labour = append(e.Labour[:i], e.Labour[i+1:]...)
			e.touch(now)
			return nil
		}
	}
	return NewNotFoundError("labour", labourID)
}

func (e *Estimate) touch(now time.Time) {
	e.CalculateTotals()
	e.UpdatedAt = now
}
