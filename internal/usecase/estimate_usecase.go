package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/logger"
	"autonova/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100

	// Number issuance is backed by an atomic per-date counter, so a collision
	// on the conditional put is only possible with manually inserted data.
	// One bounded retry loop is enough of a backstop.
	maxNumberAttempts = 3
)

type CreateEstimateInput struct {
	CustomerID              string
	VehicleID               string
	InsuranceCompanyID      string
	InsuranceClaimNumber    string
	Description             string
	EstimatedCompletionDate *time.Time
}

// UpdateEstimateInput applies a partial update; nil fields are untouched.
type UpdateEstimateInput struct {
	CustomerID                   *string
	VehicleID                    *string
	InsuranceCompanyID           *string
	InsuranceClaimNumber         *string
	Description                  *string
	EstimatedCompletionDate      *time.Time
	ClearEstimatedCompletionDate bool
}

type ListEstimatesInput struct {
	Status     string
	CustomerID string
	VehicleID  string
	Page       int
	PerPage    int
}

type EstimatePage struct {
	Estimates []entities.Estimate
	Total     int
	Page      int
	PerPage   int
	Pages     int
}

// IEstimateUseCase exposes the estimate workflow: create/read/update/delete,
// the approve/reject state machine, and part/labour line maintenance with
// totals recalculation.

type IEstimateUseCase interface {
	Create(ctx context.Context, actorID string, in CreateEstimateInput) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number string) (entities.Estimate, error)
	List(ctx context.Context, in ListEstimatesInput) (EstimatePage, error)
	Update(ctx context.Context, number string, in UpdateEstimateInput) (entities.Estimate, error)
	Delete(ctx context.Context, number string) error
	Approve(ctx context.Context, number, actorID string) (entities.Estimate, error)
	Reject(ctx context.Context, number, actorID, reason string) (entities.Estimate, error)

	AddPart(ctx context.Context, number string, p entities.EstimatePart) (entities.EstimatePart, entities.Estimate, error)
	UpdatePart(ctx context.Context, number, partID string, upd entities.PartUpdate) (entities.EstimatePart, entities.Estimate, error)
	RemovePart(ctx context.Context, number, partID string) (entities.Estimate, error)
	AddLabour(ctx context.Context, number string, l entities.EstimateLabour) (entities.EstimateLabour, entities.Estimate, error)
	UpdateLabour(ctx context.Context, number, labourID string, upd entities.LabourUpdate) (entities.EstimateLabour, entities.Estimate, error)
	RemoveLabour(ctx context.Context, number, labourID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	insurers  interfaces.IInsuranceCompanyRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	insurers interfaces.IInsuranceCompanyRepository,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, customers: customers, vehicles: vehicles, insurers: insurers}
}

func (u *EstimateUseCase) Create(ctx context.Context, actorID string, in CreateEstimateInput) (entities.Estimate, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	if in.CustomerID == "" {
		return entities.Estimate{}, entities.NewValidationError("customer_id", "is required")
	}
	if in.VehicleID == "" {
		return entities.Estimate{}, entities.NewValidationError("vehicle_id", "is required")
	}

	if err := u.verifyCustomer(ctx, in.CustomerID); err != nil {
		return entities.Estimate{}, err
	}
	if err := u.verifyVehicle(ctx, in.VehicleID); err != nil {
		return entities.Estimate{}, err
	}
	if in.InsuranceCompanyID != "" {
		if err := u.verifyInsurer(ctx, in.InsuranceCompanyID); err != nil {
			return entities.Estimate{}, err
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		now := time.Now().UTC()
		seq, err := u.repo.NextSequence(ctx, entities.EstimateDatePrefix(now))
		if err != nil {
			return entities.Estimate{}, err
		}

		e := entities.NewEstimate(entities.FormatEstimateNumber(now, seq), in.CustomerID, in.VehicleID, actorID, now)
		e.InsuranceCompanyID = in.InsuranceCompanyID
		e.InsuranceClaimNumber = in.InsuranceClaimNumber
		e.Description = in.Description
		e.EstimatedCompletionDate = in.EstimatedCompletionDate

		created, err := u.repo.Create(ctx, e)
		if err != nil {
			var conflict *entities.ConflictError
			if errors.As(err, &conflict) {
				lastErr = err
				continue
			}
			return entities.Estimate{}, err
		}

		logger.L().Info("estimate created",
			zap.String("estimate_number", created.EstimateNumber),
			zap.String("customer_id", created.CustomerID),
			zap.String("created_by", actorID))
		return created, nil
	}
	return entities.Estimate{}, lastErr
}

func (u *EstimateUseCase) GetByNumber(ctx context.Context, number string) (entities.Estimate, error) {
	return u.load(ctx, number)
}

func (u *EstimateUseCase) List(ctx context.Context, in ListEstimatesInput) (EstimatePage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = defaultPerPage
	}
	if in.PerPage > maxPerPage {
		in.PerPage = maxPerPage
	}

	all, err := u.repo.List(ctx, interfaces.EstimateFilter{
		Status:     in.Status,
		CustomerID: in.CustomerID,
		VehicleID:  in.VehicleID,
	})
	if err != nil {
		return EstimatePage{}, err
	}

	total := len(all)
	pages := (total + in.PerPage - 1) / in.PerPage
	start := (in.Page - 1) * in.PerPage
	if start > total {
		start = total
	}
	end := start + in.PerPage
	if end > total {
		end = total
	}

	return EstimatePage{
		Estimates: all[start:end],
		Total:     total,
		Page:      in.Page,
		PerPage:   in.PerPage,
		Pages:     pages,
	}, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, number string, in UpdateEstimateInput) (entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := e.EnsureMutable("update"); err != nil {
		return entities.Estimate{}, err
	}

	if in.CustomerID != nil {
		if err := u.verifyCustomer(ctx, *in.CustomerID); err != nil {
			return entities.Estimate{}, err
		}
		e.CustomerID = *in.CustomerID
	}
	if in.VehicleID != nil {
		if err := u.verifyVehicle(ctx, *in.VehicleID); err != nil {
			return entities.Estimate{}, err
		}
		e.VehicleID = *in.VehicleID
	}
	if in.InsuranceCompanyID != nil {
		if *in.InsuranceCompanyID != "" {
			if err := u.verifyInsurer(ctx, *in.InsuranceCompanyID); err != nil {
				return entities.Estimate{}, err
			}
		}
		e.InsuranceCompanyID = *in.InsuranceCompanyID
	}
	if in.InsuranceClaimNumber != nil {
		e.InsuranceClaimNumber = *in.InsuranceClaimNumber
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.EstimatedCompletionDate != nil {
		e.EstimatedCompletionDate = in.EstimatedCompletionDate
	} else if in.ClearEstimatedCompletionDate {
		e.EstimatedCompletionDate = nil
	}
	e.UpdatedAt = time.Now().UTC()

	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) Delete(ctx context.Context, number string) error {
	e, err := u.load(ctx, number)
	if err != nil {
		return err
	}
	if err := e.EnsureMutable("delete"); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, e.EstimateNumber, e.Version); err != nil {
		return err
	}
	logger.L().Info("estimate deleted", zap.String("estimate_number", e.EstimateNumber))
	return nil
}

func (u *EstimateUseCase) Approve(ctx context.Context, number, actorID string) (entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := e.Approve(actorID, time.Now().UTC()); err != nil {
		return entities.Estimate{}, err
	}
	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	logger.L().Info("estimate approved",
		zap.String("estimate_number", saved.EstimateNumber),
		zap.String("approved_by", actorID))
	return saved, nil
}

func (u *EstimateUseCase) Reject(ctx context.Context, number, actorID, reason string) (entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := e.Reject(actorID, reason, time.Now().UTC()); err != nil {
		return entities.Estimate{}, err
	}
	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	logger.L().Info("estimate rejected",
		zap.String("estimate_number", saved.EstimateNumber),
		zap.String("rejected_by", actorID))
	return saved, nil
}

func (u *EstimateUseCase) load(ctx context.Context, number string) (entities.Estimate, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Estimate{}, entities.NewValidationError("estimate_number", "is required")
	}
	e, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.EstimateNumber == "" {
		return entities.Estimate{}, entities.NewNotFoundError("estimate", number)
	}
	return e, nil
}

func (u *EstimateUseCase) verifyCustomer(ctx context.Context, id string) error {
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return entities.NewNotFoundError("customer", id)
	}
	return nil
}

func (u *EstimateUseCase) verifyVehicle(ctx context.Context, id string) error {
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return entities.NewNotFoundError("vehicle", id)
	}
	return nil
}

func (u *EstimateUseCase) verifyInsurer(ctx context.Context, id string) error {
	ic, err := u.insurers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ic.ID == "" {
		return entities.NewNotFoundError("insurance company", id)
	}
	return nil
}
