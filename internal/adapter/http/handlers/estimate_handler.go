package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "autonova/internal/adapter/http/dto/request"
	response "autonova/internal/adapter/http/dto/response"
	"autonova/internal/adapter/http/middleware"
	"autonova/internal/domain/entities"
	"autonova/internal/usecase"
	"autonova/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate workflow: CRUD,
// approval/rejection, and part/labour line maintenance.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate opens a new pending estimate for a customer's vehicle.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	completionDate, err := payload.ParseCompletionDate()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), c.GetString(middleware.ContextActorID), usecase.CreateEstimateInput{
		CustomerID:              payload.CustomerID,
		VehicleID:               payload.VehicleID,
		InsuranceCompanyID:      payload.InsuranceCompanyID,
		InsuranceClaimNumber:    payload.InsuranceClaimNumber,
		Description:             payload.Description,
		EstimatedCompletionDate: completionDate,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	in := usecase.ListEstimatesInput{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		VehicleID:  c.Query("vehicle_id"),
	}
	in.Page = intQuery(c, "page", 1)
	in.PerPage = intQuery(c, "per_page", 10)

	page, err := h.usecase.List(c.Request.Context(), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	estimates := make([]response.EstimateResponse, 0, len(page.Estimates))
	for _, e := range page.Estimates {
		estimates = append(estimates, response.FromEstimate(e))
	}
	c.JSON(http.StatusOK, response.EstimateListResponse{
		Estimates: estimates,
		Total:     page.Total,
		Page:      page.Page,
		PerPage:   page.PerPage,
		Pages:     page.Pages,
	})
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	completionDate, clearDate, err := payload.ParseCompletionDate()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), c.Param("number"), usecase.UpdateEstimateInput{
		CustomerID:                   payload.CustomerID,
		VehicleID:                    payload.VehicleID,
		InsuranceCompanyID:           payload.InsuranceCompanyID,
		InsuranceClaimNumber:         payload.InsuranceClaimNumber,
		Description:                  payload.Description,
		EstimatedCompletionDate:      completionDate,
		ClearEstimatedCompletionDate: clearDate,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("number")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estimate deleted successfully"})
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	estimate, err := h.usecase.Approve(c.Request.Context(), c.Param("number"), c.GetString(middleware.ContextActorID))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	var payload request.RejectEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Reject(c.Request.Context(), c.Param("number"), c.GetString(middleware.ContextActorID), payload.RejectionReason)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	var validation *entities.ValidationError
	var notFound *entities.NotFoundError
	var invalidState *entities.InvalidStateError
	var conflict *entities.ConflictError

	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_ERROR", validation.Error(), err, http.StatusBadRequest)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.As(err, &invalidState):
		return pkg.NewDomainError("INVALID_STATE", invalidState.Error(), err, http.StatusConflict)
	case errors.As(err, &conflict):
		return pkg.NewDomainError("CONFLICT", conflict.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}
