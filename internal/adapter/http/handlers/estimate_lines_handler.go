package handlers

import (
	"net/http"

	request "autonova/internal/adapter/http/dto/request"
	response "autonova/internal/adapter/http/dto/response"
	"autonova/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Line-item handlers share the estimate usecase; every mutation returns the
// affected line plus the estimate with recalculated totals.

func (h *EstimateHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	part, estimate, err := h.usecase.AddPart(c.Request.Context(), c.Param("number"), entities.EstimatePart{
		Name:       payload.Name,
		PartNumber: payload.PartNumber,
		Quantity:   payload.Quantity,
		UnitPrice:  payload.UnitPrice,
		Notes:      payload.Notes,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PartWithEstimateResponse{
		Part:     response.FromPart(part),
		Estimate: response.FromEstimate(estimate),
	})
}

func (h *EstimateHandler) UpdatePart(c *gin.Context) {
	var payload request.UpdatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	part, estimate, err := h.usecase.UpdatePart(c.Request.Context(), c.Param("number"), c.Param("partId"), entities.PartUpdate{
		Name:       payload.Name,
		PartNumber: payload.PartNumber,
		Quantity:   payload.Quantity,
		UnitPrice:  payload.UnitPrice,
		Notes:      payload.Notes,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PartWithEstimateResponse{
		Part:     response.FromPart(part),
		Estimate: response.FromEstimate(estimate),
	})
}

func (h *EstimateHandler) RemovePart(c *gin.Context) {
	estimate, err := h.usecase.RemovePart(c.Request.Context(), c.Param("number"), c.Param("partId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) AddLabour(c *gin.Context) {
	var payload request.AddLabourRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	labour, estimate, err := h.usecase.AddLabour(c.Request.Context(), c.Param("number"), entities.EstimateLabour{
		Description: payload.Description,
		Hours:       payload.Hours,
		HourlyRate:  payload.HourlyRate,
		Notes:       payload.Notes,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.LabourWithEstimateResponse{
		Labour:   response.FromLabour(labour),
		Estimate: response.FromEstimate(estimate),
	})
}

func (h *EstimateHandler) UpdateLabour(c *gin.Context) {
	var payload request.UpdateLabourRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	labour, estimate, err := h.usecase.UpdateLabour(c.Request.Context(), c.Param("number"), c.Param("labourId"), entities.LabourUpdate{
		Description: payload.Description,
		Hours:       payload.Hours,
		HourlyRate:  payload.HourlyRate,
		Notes:       payload.Notes,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LabourWithEstimateResponse{
		Labour:   response.FromLabour(labour),
		Estimate: response.FromEstimate(estimate),
	})
}

func (h *EstimateHandler) RemoveLabour(c *gin.Context) {
	estimate, err := h.usecase.RemoveLabour(c.Request.Context(), c.Param("number"), c.Param("labourId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
