package handlers

import (
	"net/http"

	request "autonova/internal/adapter/http/dto/request"
	"autonova/internal/domain/entities"
	"autonova/internal/usecase"
	"autonova/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistryPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRY_INPUT", "Invalid payload", http.StatusBadRequest)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), entities.Customer{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Address:   payload.Address,
		City:      payload.City,
		State:     payload.State,
		ZipCode:   payload.ZipCode,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), entities.Vehicle{
		CustomerID:   payload.CustomerID,
		Make:         payload.Make,
		Model:        payload.Model,
		Year:         payload.Year,
		Color:        payload.Color,
		VIN:          payload.VIN,
		LicensePlate: payload.LicensePlate,
		Mileage:      payload.Mileage,
		EngineType:   payload.EngineType,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

type InsuranceCompanyHandler struct {
	usecase usecase.IInsuranceCompanyUseCase
}

func NewInsuranceCompanyHandler(uc usecase.IInsuranceCompanyUseCase) *InsuranceCompanyHandler {
	return &InsuranceCompanyHandler{usecase: uc}
}

func (h *InsuranceCompanyHandler) CreateInsuranceCompany(c *gin.Context) {
	var payload request.CreateInsuranceCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	insurer, err := h.usecase.Create(c.Request.Context(), entities.InsuranceCompany{
		CompanyName: payload.CompanyName,
		ContactName: payload.ContactName,
		Email:       payload.Email,
		Phone:       payload.Phone,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, insurer)
}

func (h *InsuranceCompanyHandler) GetInsuranceCompany(c *gin.Context) {
	insurer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, insurer)
}

func (h *InsuranceCompanyHandler) ListInsuranceCompanies(c *gin.Context) {
	insurers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"insurance_companies": insurers})
}
