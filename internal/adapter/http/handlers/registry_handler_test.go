package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autonova/internal/adapter/http/handlers/mocks"
	"autonova/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRegistryRouter(customers *CustomerHandler, vehicles *VehicleHandler, insurers *InsuranceCompanyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/customers", customers.CreateCustomer)
	router.GET("/customers", customers.ListCustomers)
	router.GET("/customers/:id", customers.GetCustomer)
	router.POST("/vehicles", vehicles.CreateVehicle)
	router.GET("/vehicles", vehicles.ListVehicles)
	router.GET("/vehicles/:id", vehicles.GetVehicle)
	router.POST("/insurance-companies", insurers.CreateInsuranceCompany)
	router.GET("/insurance-companies", insurers.ListInsuranceCompanies)
	router.GET("/insurance-companies/:id", insurers.GetInsuranceCompany)
	return router
}

func newRegistryMocks(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase, *mocks.MockIVehicleUseCase, *mocks.MockIInsuranceCompanyUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockICustomerUseCase(ctrl)
	vehicles := mocks.NewMockIVehicleUseCase(ctrl)
	insurers := mocks.NewMockIInsuranceCompanyUseCase(ctrl)
	router := newRegistryRouter(
		NewCustomerHandler(customers),
		NewVehicleHandler(vehicles),
		NewInsuranceCompanyHandler(insurers),
	)
	return router, customers, vehicles, insurers
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		router, _, _, _ := newRegistryMocks(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{"))
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_REGISTRY_INPUT")
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		router, customers, _, _ := newRegistryMocks(t)
		customers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entities.Customer{}, entities.NewValidationError("first_name", "is required"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(`{"last_name":"Silva","phone":"11999990000"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("created", func(t *testing.T) {
		router, customers, _, _ := newRegistryMocks(t)
		customers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, c entities.Customer) (entities.Customer, error) {
				require.Equal(t, "Ana", c.FirstName)
				require.Equal(t, "Silva", c.LastName)
				c.ID = "cust-1"
				return c, nil
			})

		rec := httptest.NewRecorder()
		body := `{"first_name":"Ana","last_name":"Silva","phone":"11999990000","city":"Sao Paulo"}`
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entities.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "cust-1", got.ID)
		assert.Equal(t, "Sao Paulo", got.City)
	})
}

func TestCustomerHandler_GetAndList(t *testing.T) {
	t.Run("get missing customer", func(t *testing.T) {
		router, customers, _, _ := newRegistryMocks(t)
		customers.EXPECT().
			GetByID(gomock.Any(), "cust-404").
			Return(entities.Customer{}, entities.NewNotFoundError("customer", "cust-404"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/customers/cust-404", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	})

	t.Run("list", func(t *testing.T) {
		router, customers, _, _ := newRegistryMocks(t)
		customers.EXPECT().
			List(gomock.Any()).
			Return([]entities.Customer{{ID: "cust-1"}, {ID: "cust-2"}}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Customers []entities.Customer `json:"customers"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Customers, 2)
	})

	t.Run("list repository failure", func(t *testing.T) {
		router, customers, _, _ := newRegistryMocks(t)
		customers.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("dynamodb unavailable"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	})
}

func TestVehicleHandler(t *testing.T) {
	t.Run("create with unknown owner", func(t *testing.T) {
		router, _, vehicles, _ := newRegistryMocks(t)
		vehicles.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entities.Vehicle{}, entities.NewNotFoundError("customer", "cust-404"))

		rec := httptest.NewRecorder()
		body := `{"customer_id":"cust-404","make":"Fiat","model":"Argo","year":2022}`
		req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		router, _, vehicles, _ := newRegistryMocks(t)
		vehicles.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, v entities.Vehicle) (entities.Vehicle, error) {
				require.Equal(t, "cust-1", v.CustomerID)
				require.Equal(t, 2022, v.Year)
				v.ID = "veh-1"
				return v, nil
			})

		rec := httptest.NewRecorder()
		body := `{"customer_id":"cust-1","make":"Fiat","model":"Argo","year":2022,"license_plate":"ABC1D23"}`
		req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entities.Vehicle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "veh-1", got.ID)
		assert.Equal(t, "ABC1D23", got.LicensePlate)
	})

	t.Run("get", func(t *testing.T) {
		router, _, vehicles, _ := newRegistryMocks(t)
		vehicles.EXPECT().
			GetByID(gomock.Any(), "veh-1").
			Return(entities.Vehicle{ID: "veh-1", Make: "Fiat"}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh-1", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"make":"Fiat"`)
	})
}

func TestInsuranceCompanyHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, _, _, insurers := newRegistryMocks(t)
		insurers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
				require.Equal(t, "Porto Sul Seguros", ic.CompanyName)
				ic.ID = "ins-1"
				return ic, nil
			})

		rec := httptest.NewRecorder()
		body := `{"company_name":"Porto Sul Seguros","phone":"1130004000"}`
		req := httptest.NewRequest(http.MethodPost, "/insurance-companies", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"ins-1"`)
	})

	t.Run("list", func(t *testing.T) {
		router, _, _, insurers := newRegistryMocks(t)
		insurers.EXPECT().
			List(gomock.Any()).
			Return([]entities.InsuranceCompany{{ID: "ins-1"}}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/insurance-companies", nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Insurers []entities.InsuranceCompany `json:"insurance_companies"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Insurers, 1)
	})

	t.Run("get missing", func(t *testing.T) {
		router, _, _, insurers := newRegistryMocks(t)
		insurers.EXPECT().
			GetByID(gomock.Any(), "ins-404").
			Return(entities.InsuranceCompany{}, entities.NewNotFoundError("insurance company", "ins-404"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/insurance-companies/ins-404", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
