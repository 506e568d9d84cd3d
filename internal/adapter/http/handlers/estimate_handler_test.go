package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autonova/internal/adapter/http/handlers/mocks"
	"autonova/internal/domain/entities"
	"autonova/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(h *EstimateHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates/:number", h.GetEstimate)
	r.GET("/v1/estimates", h.ListEstimates)
	r.PUT("/v1/estimates/:number", h.UpdateEstimate)
	r.DELETE("/v1/estimates/:number", h.DeleteEstimate)
	r.PATCH("/v1/estimates/:number/approve", h.ApproveEstimate)
	r.PATCH("/v1/estimates/:number/reject", h.RejectEstimate)
	r.POST("/v1/estimates/:number/parts", h.AddPart)
	r.PUT("/v1/estimates/:number/parts/:partId", h.UpdatePart)
	r.DELETE("/v1/estimates/:number/parts/:partId", h.RemovePart)
	r.POST("/v1/estimates/:number/labour", h.AddLabour)
	return r
}

func sampleEstimate(number string) entities.Estimate {
	return entities.NewEstimate(number, "cust-1", "veh-1", "user-1", time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad completion date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cust-1","vehicle_id":"veh-1","estimated_completion_date":"not-a-date"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Estimate{}, entities.NewNotFoundError("customer", "cust-x"))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cust-x","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.CustomerID != "cust-1" || in.VehicleID != "veh-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return sampleEstimate("EST-20250615-0001"), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"customer_id":"cust-1","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body["estimate_number"] != "EST-20250615-0001" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["status"] != "pending" {
			t.Fatalf("expected pending status, got %v", body["status"])
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0009").Return(entities.Estimate{}, entities.NewNotFoundError("estimate", "EST-20250615-0009"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-20250615-0009", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(sampleEstimate("EST-20250615-0001"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-20250615-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in usecase.ListEstimatesInput) (usecase.EstimatePage, error) {
			if in.Status != "pending" || in.Page != 2 || in.PerPage != 5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return usecase.EstimatePage{
				Estimates: []entities.Estimate{sampleEstimate("EST-20250615-0006")},
				Total:     6, Page: 2, PerPage: 5, Pages: 2,
			}, nil
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates?status=pending&page=2&per_page=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total int `json:"total"`
		Page  int `json:"page"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Total != 6 || body.Page != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEstimateHandler_ApproveEstimate(t *testing.T) {
	t.Run("terminal state maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "EST-20250615-0001", gomock.Any()).
			Return(entities.Estimate{}, entities.NewInvalidStateError("approve", entities.EstimateStatusApproved))

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-20250615-0001/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("version conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "EST-20250615-0001", gomock.Any()).
			Return(entities.Estimate{}, entities.NewConflictError("estimate was modified concurrently"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-20250615-0001/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "EST-20250615-0001", gomock.Any()).
			Return(entities.Estimate{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-20250615-0001/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		e := sampleEstimate("EST-20250615-0001")
		if err := e.Approve("mgr-1", time.Now().UTC()); err != nil {
			t.Fatalf("approve: %v", err)
		}
		uc.EXPECT().Approve(gomock.Any(), "EST-20250615-0001", gomock.Any()).Return(e, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-20250615-0001/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_RejectEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	e := sampleEstimate("EST-20250615-0001")
	if err := e.Reject("mgr-1", "over budget", time.Now().UTC()); err != nil {
		t.Fatalf("reject: %v", err)
	}
	uc.EXPECT().Reject(gomock.Any(), "EST-20250615-0001", gomock.Any(), "over budget").Return(e, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-20250615-0001/reject", bytes.NewBufferString(`{"rejection_reason":"over budget"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["rejection_reason"] != "over budget" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	t.Run("approved refuses delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "EST-20250615-0001").
			Return(entities.NewInvalidStateError("delete", entities.EstimateStatusApproved))

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/EST-20250615-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "EST-20250615-0001").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/EST-20250615-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_AddPart(t *testing.T) {
	t.Run("validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().AddPart(gomock.Any(), "EST-20250615-0001", gomock.Any()).
			Return(entities.EstimatePart{}, entities.Estimate{}, entities.NewValidationError("quantity", "must be greater than 0"))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-20250615-0001/parts", bytes.NewBufferString(`{"name":"Radiator","quantity":-1,"unit_price":"250.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with recalculated estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc))

		e := sampleEstimate("EST-20250615-0001")
		part := entities.EstimatePart{ID: "p1", Name: "Radiator", Quantity: 1, UnitPrice: decimal.RequireFromString("250.00"), TotalPrice: decimal.RequireFromString("250.00")}
		if err := e.AddPart(part, time.Now().UTC()); err != nil {
			t.Fatalf("seed part: %v", err)
		}
		uc.EXPECT().AddPart(gomock.Any(), "EST-20250615-0001", gomock.Any()).Return(part, e, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-20250615-0001/parts", bytes.NewBufferString(`{"name":"Radiator","quantity":1,"unit_price":"250.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Part struct {
				ID string `json:"id"`
			} `json:"part"`
			Estimate struct {
				GrandTotal string `json:"grand_total"`
			} `json:"estimate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body.Part.ID != "p1" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Estimate.GrandTotal != "275" {
			t.Fatalf("expected grand total 275, got %q", body.Estimate.GrandTotal)
		}
	})
}

func TestEstimateHandler_RemovePart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	uc.EXPECT().RemovePart(gomock.Any(), "EST-20250615-0001", "p-missing").
		Return(entities.Estimate{}, entities.NewNotFoundError("part", "p-missing"))

	req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/EST-20250615-0001/parts/p-missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEstimateHandler_AddLabour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc))

	uc.EXPECT().AddLabour(gomock.Any(), "EST-20250615-0001", gomock.Any()).
		Return(entities.EstimateLabour{}, entities.Estimate{}, entities.NewInvalidStateError("add labour to", entities.EstimateStatusRejected))

	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-20250615-0001/labour", bytes.NewBufferString(`{"description":"Paint","hours":"2","hourly_rate":"90.00"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
