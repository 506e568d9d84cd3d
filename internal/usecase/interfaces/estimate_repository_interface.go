package interfaces

import (
	"context"

	"autonova/internal/domain/entities"
)

// EstimateFilter narrows List results. Empty fields are ignored.
type EstimateFilter struct {
	Status     string
	CustomerID string
	VehicleID  string
}

// IEstimateRepository abstracts DynamoDB persistence for the Estimate
// aggregate.
//
// Concurrency contract:
//   - Create is conditional on the estimate number not existing and returns
//     ConflictError on collision, so number issuance is retry-safe.
//   - Save and Delete are conditional on the caller's Version matching the
//     stored one; a mismatch returns ConflictError instead of losing a
//     concurrent update.
//   - NextSequence atomically increments the per-date counter that feeds
//     number generation.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number string) (entities.Estimate, error)
	List(ctx context.Context, filter EstimateFilter) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, number string, version int64) error
	NextSequence(ctx context.Context, datePrefix string) (int, error)
}
