package usecase

import (
	"context"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Line operations load the aggregate, mutate it through the entity (which
// gates on status, validates, and recalculates totals), and save it back in
// one version-guarded write.

func (u *EstimateUseCase) AddPart(ctx context.Context, number string, p entities.EstimatePart) (entities.EstimatePart, entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}

	p.ID = uuid.NewString()
	if err := e.AddPart(p, time.Now().UTC()); err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}
	logger.L().Info("part added",
		zap.String("estimate_number", number),
		zap.String("part_id", p.ID),
		zap.String("part_name", p.Name))
	return saved.Parts[len(saved.Parts)-1], saved, nil
}

func (u *EstimateUseCase) UpdatePart(ctx context.Context, number, partID string, upd entities.PartUpdate) (entities.EstimatePart, entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}

	p, err := e.UpdatePart(partID, upd, time.Now().UTC())
	if err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.EstimatePart{}, entities.Estimate{}, err
	}
	return p, saved, nil
}

func (u *EstimateUseCase) RemovePart(ctx context.Context, number, partID string) (entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}

	if err := e.RemovePart(partID, time.Now().UTC()); err != nil {
		return entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	logger.L().Info("part removed",
		zap.String("estimate_number", number),
		zap.String("part_id", partID))
	return saved, nil
}

func (u *EstimateUseCase) AddLabour(ctx context.Context, number string, l entities.EstimateLabour) (entities.EstimateLabour, entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}

	l.ID = uuid.NewString()
	if err := e.AddLabour(l, time.Now().UTC()); err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}
	logger.L().Info("labour added",
		zap.String("estimate_number", number),
		zap.String("labour_id", l.ID))
	return saved.Labour[len(saved.Labour)-1], saved, nil
}

func (u *EstimateUseCase) UpdateLabour(ctx context.Context, number, labourID string, upd entities.LabourUpdate) (entities.EstimateLabour, entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}

	l, err := e.UpdateLabour(labourID, upd, time.Now().UTC())
	if err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.EstimateLabour{}, entities.Estimate{}, err
	}
	return l, saved, nil
}

func (u *EstimateUseCase) RemoveLabour(ctx context.Context, number, labourID string) (entities.Estimate, error) {
	e, err := u.load(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}

	if err := e.RemoveLabour(labourID, time.Now().UTC()); err != nil {
		return entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	logger.L().Info("labour removed",
		zap.String("estimate_number", number),
		zap.String("labour_id", labourID))
	return saved, nil
}
