package entities

import "github.com/shopspring/decimal"

// EstimatePart is a part line owned by exactly one estimate.
//
// TotalPrice is always Quantity x UnitPrice; values supplied by callers are
// ignored and recomputed. A zero unit price is allowed (warranty or
// promotional parts).
type EstimatePart struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PartNumber string          `json:"part_number,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes,omitempty"`
}

func (p EstimatePart) validate() error {
	if p.Name == "" {
		return NewValidationError("name", "must not be empty")
	}
	if p.Quantity <= 0 {
		return NewValidationError("quantity", "must be greater than 0")
	}
	if p.UnitPrice.IsNegative() {
		return NewValidationError("unit_price", "cannot be negative")
	}
	return nil
}

func (p EstimatePart) computeTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Quantity)).Mul(p.UnitPrice).RoundBank(2)
}

// PartUpdate carries a partial update; nil fields are left untouched.
type PartUpdate struct {
	Name       *string
	PartNumber *string
	Quantity   *int
	UnitPrice  *decimal.Decimal
	Notes      *string
}

func (u PartUpdate) applyTo(p *EstimatePart) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.PartNumber != nil {
		p.PartNumber = *u.PartNumber
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.UnitPrice != nil {
		p.UnitPrice = *u.UnitPrice
	}
	if u.Notes != nil {
		p.Notes = *u.Notes
	}
}
