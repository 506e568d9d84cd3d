package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/logger"
	"autonova/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentPayload     = errors.New("invalid payment payload")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IEstimatePaymentUseCase captures customer deposits against approved
// estimates. The charged amount is always the estimate's grand total at
// capture time; callers cannot override it.

type IEstimatePaymentUseCase interface {
	CreateDeposit(ctx context.Context, estimateNumber string, payload json.RawMessage) (entities.EstimatePayment, error)
	ListByEstimate(ctx context.Context, estimateNumber string) ([]entities.EstimatePayment, error)
}

type EstimatePaymentUseCase struct {
	repo         interfaces.IEstimatePaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IEstimatePaymentUseCase = (*EstimatePaymentUseCase)(nil)

func NewEstimatePaymentUseCase(
	repo interfaces.IEstimatePaymentRepository,
	estimateRepo interfaces.IEstimateRepository,
	gateway interfaces.IPaymentGateway,
) *EstimatePaymentUseCase {
	return &EstimatePaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *EstimatePaymentUseCase) CreateDeposit(ctx context.Context, estimateNumber string, payload json.RawMessage) (entities.EstimatePayment, error) {
	estimateNumber = strings.TrimSpace(estimateNumber)
	if estimateNumber == "" {
		return entities.EstimatePayment{}, entities.NewValidationError("estimate_number", "is required")
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.EstimatePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.EstimatePayment{}, ErrPaymentGatewayUnavailable
	}

	est, err := u.estimateRepo.GetByNumber(ctx, estimateNumber)
	if err != nil {
		return entities.EstimatePayment{}, err
	}
	if est.EstimateNumber == "" {
		return entities.EstimatePayment{}, entities.NewNotFoundError("estimate", estimateNumber)
	}
	if est.Status != entities.EstimateStatusApproved {
		return entities.EstimatePayment{}, entities.NewInvalidStateError("capture a deposit for", est.Status)
	}

	// Mercado Pago uses external_reference to reconcile events; the amount
	// always comes from the stored estimate, not from the caller. The
	// provider API takes a float; the persisted amount stays decimal.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.EstimatePayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = est.EstimateNumber
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for estimate %s", est.EstimateNumber)
	}
	reqMap["transaction_amount"] = est.GrandTotal.InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.L().Error("payment gateway create failed",
			zap.String("estimate_number", est.EstimateNumber),
			zap.Error(err))
		return entities.EstimatePayment{}, err
	}

	p := entities.EstimatePayment{
		ID:                uuid.NewString(),
		EstimateNumber:    est.EstimateNumber,
		Amount:            est.GrandTotal,
		Status:            paymentStatusFromProvider(providerStatus),
		ProviderPaymentID: providerID,
		ProviderResponse:  providerResp,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.EstimatePayment{}, err
	}
	logger.L().Info("deposit captured",
		zap.String("estimate_number", est.EstimateNumber),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *EstimatePaymentUseCase) ListByEstimate(ctx context.Context, estimateNumber string) ([]entities.EstimatePayment, error) {
	estimateNumber = strings.TrimSpace(estimateNumber)
	if estimateNumber == "" {
		return nil, entities.NewValidationError("estimate_number", "is required")
	}
	return u.repo.ListByEstimateNumber(ctx, estimateNumber)
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "denied":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}
