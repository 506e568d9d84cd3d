package response

import (
	"time"

	"autonova/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PartResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PartNumber string          `json:"part_number,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes,omitempty"`
}

type LabourResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Notes       string          `json:"notes,omitempty"`
}

type EstimateResponse struct {
	EstimateNumber          string           `json:"estimate_number"`
	CustomerID              string           `json:"customer_id"`
	VehicleID               string           `json:"vehicle_id"`
	InsuranceCompanyID      string           `json:"insurance_company_id,omitempty"`
	InsuranceClaimNumber    string           `json:"insurance_claim_number,omitempty"`
	Description             string           `json:"description,omitempty"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date,omitempty"`
	Status                  string           `json:"status"`
	Parts                   []PartResponse   `json:"parts"`
	Labour                  []LabourResponse `json:"labour"`
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
}

func FromPart(p entities.EstimatePart) PartResponse {
	return PartResponse{
		ID:         p.ID,
		Name:       p.Name,
		PartNumber: p.PartNumber,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		TotalPrice: p.TotalPrice,
		Notes:      p.Notes,
	}
}

func FromLabour(l entities.EstimateLabour) LabourResponse {
	return LabourResponse{
		ID:          l.ID,
		Description: l.Description,
		Hours:       l.Hours,
		HourlyRate:  l.HourlyRate,
		TotalCost:   l.TotalCost,
		Notes:       l.Notes,
	}
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	parts := make([]PartResponse, 0, len(e.Parts))
	for _, p := range e.Parts {
		parts = append(parts, FromPart(p))
	}
	labour := make([]LabourResponse, 0, len(e.Labour))
	for _, l := range e.Labour {
		labour = append(labour, FromLabour(l))
	}

	return EstimateResponse{
		EstimateNumber:          e.EstimateNumber,
		CustomerID:              e.CustomerID,
		VehicleID:               e.VehicleID,
		InsuranceCompanyID:      e.InsuranceCompanyID,
		InsuranceClaimNumber:    e.InsuranceClaimNumber,
		Description:             e.Description,
		EstimatedCompletionDate: e.EstimatedCompletionDate,
		Status:                  string(e.Status),
		Parts:                   parts,
		Labour:                  labour,
		PartsTotal:              e.PartsTotal,
		LabourTotal:             e.LabourTotal,
		TaxAmount:               e.TaxAmount,
		GrandTotal:              e.GrandTotal,
		ApprovedBy:              e.ApprovedBy,
		ApprovedAt:              e.ApprovedAt,
		RejectionReason:         e.RejectionReason,
		CreatedBy:               e.CreatedBy,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}

type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"per_page"`
	Pages     int                `json:"pages"`
}

// PartWithEstimateResponse pairs the mutated line with the freshly
// recalculated estimate, matching the workflow's output contract.
type PartWithEstimateResponse struct {
	Part     PartResponse     `json:"part"`
	Estimate EstimateResponse `json:"estimate"`
}

type LabourWithEstimateResponse struct {
	Labour   LabourResponse   `json:"labour"`
	Estimate EstimateResponse `json:"estimate"`
}
