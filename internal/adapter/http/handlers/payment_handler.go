package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "autonova/internal/adapter/http/dto/response"
	"autonova/internal/usecase"
	"autonova/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	errGatewayUnavailable    = pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
)

// EstimatePaymentHandler captures deposits against approved estimates and
// lists captured payments.

type EstimatePaymentHandler struct {
	usecase usecase.IEstimatePaymentUseCase
}

func NewEstimatePaymentHandler(uc usecase.IEstimatePaymentUseCase) *EstimatePaymentHandler {
	return &EstimatePaymentHandler{usecase: uc}
}

// CreateDeposit forwards the raw provider payload; the amount is resolved
// server-side from the estimate's grand total.
func (h *EstimatePaymentHandler) CreateDeposit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreateDeposit(c.Request.Context(), c.Param("number"), json.RawMessage(body))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPaymentPayload):
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
			c.JSON(errGatewayUnavailable.HTTPStatus, errGatewayUnavailable.ToHTTPError())
		default:
			appErr := mapEstimateError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *EstimatePaymentHandler) ListByEstimate(c *gin.Context) {
	payments, err := h.usecase.ListByEstimate(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromPayment(p))
	}
	c.JSON(http.StatusOK, gin.H{"payments": out})
}
