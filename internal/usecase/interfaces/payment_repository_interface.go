package interfaces

import (
	"context"

	"autonova/internal/domain/entities"
)

// IEstimatePaymentRepository abstracts DynamoDB persistence for deposit
// payments.

type IEstimatePaymentRepository interface {
	Create(ctx context.Context, p entities.EstimatePayment) (entities.EstimatePayment, error)
	GetByID(ctx context.Context, id string) (entities.EstimatePayment, error)
	ListByEstimateNumber(ctx context.Context, number string) ([]entities.EstimatePayment, error)
}
