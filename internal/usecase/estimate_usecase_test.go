package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autonova/internal/domain/entities"
	mock_interfaces "autonova/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateMocks struct {
	repo      *mock_interfaces.MockIEstimateRepository
	customers *mock_interfaces.MockICustomerRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	insurers  *mock_interfaces.MockIInsuranceCompanyRepository
}

func newEstimateUseCaseWithMocks(t *testing.T) (*EstimateUseCase, estimateMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:      mock_interfaces.NewMockIEstimateRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		insurers:  mock_interfaces.NewMockIInsuranceCompanyRepository(ctrl),
	}
	uc := NewEstimateUseCase(m.repo, m.customers, m.vehicles, m.insurers)
	return uc, m, ctrl
}

func pendingEstimate(number string) entities.Estimate {
	return entities.NewEstimate(number, "cust-1", "veh-1", "user-1", time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{CustomerID: "   ", VehicleID: "veh-1"})
		var validation *entities.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{CustomerID: "cust-1"})
		var validation *entities.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-x").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{CustomerID: "cust-x", VehicleID: "veh-1"})
		var notFound *entities.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("unknown insurer", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.insurers.EXPECT().GetByID(gomock.Any(), "ins-x").Return(entities.InsuranceCompany{}, nil)

		_, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{
			CustomerID: "cust-1", VehicleID: "veh-1", InsuranceCompanyID: "ins-x",
		})
		var notFound *entities.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(7, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				want := entities.FormatEstimateNumber(time.Now().UTC(), 7)
				if e.EstimateNumber != want {
					t.Fatalf("expected number %s, got %s", want, e.EstimateNumber)
				}
				if e.Status != entities.EstimateStatusPending {
					t.Fatalf("expected pending status, got %s", e.Status)
				}
				if e.CreatedBy != "user-1" || e.Version != 1 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if !e.GrandTotal.IsZero() {
					t.Fatalf("expected zeroed totals, got %s", e.GrandTotal)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{
			CustomerID: " cust-1 ", VehicleID: "veh-1", Description: "rear-end collision",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Description != "rear-end collision" {
			t.Fatalf("expected description carried over, got %q", res.Description)
		}
	})

	t.Run("retries on number collision", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)

		gomock.InOrder(
			m.repo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(3, nil),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, entities.NewConflictError("estimate number already exists")),
			m.repo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(4, nil),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
			),
		)

		res, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{CustomerID: "cust-1", VehicleID: "veh-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entities.SequenceOf(res.EstimateNumber) != 4 {
			t.Fatalf("expected sequence 4 after retry, got %s", res.EstimateNumber)
		}
	})

	t.Run("gives up after exhausted retries", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(1, nil).Times(maxNumberAttempts)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, entities.NewConflictError("estimate number already exists")).Times(maxNumberAttempts)

		_, err := uc.Create(context.Background(), "user-1", CreateEstimateInput{CustomerID: "cust-1", VehicleID: "veh-1"})
		var conflict *entities.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetByNumber(t *testing.T) {
	t.Run("blank number", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.GetByNumber(context.Background(), "   ")
		var validation *entities.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(entities.Estimate{}, nil)

		_, err := uc.GetByNumber(context.Background(), "EST-20250615-0001")
		var notFound *entities.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(pendingEstimate("EST-20250615-0001"), nil)

		res, err := uc.GetByNumber(context.Background(), " EST-20250615-0001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimateNumber != "EST-20250615-0001" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}

func TestEstimateUseCase_List(t *testing.T) {
	makePage := func(n int) []entities.Estimate {
		out := make([]entities.Estimate, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, pendingEstimate(entities.FormatEstimateNumber(time.Now().UTC(), i)))
		}
		return out
	}

	t.Run("defaults and slicing", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(makePage(25), nil)

		page, err := uc.List(context.Background(), ListEstimatesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Page != 1 || page.PerPage != defaultPerPage {
			t.Fatalf("expected default paging, got page=%d per_page=%d", page.Page, page.PerPage)
		}
		if page.Total != 25 || page.Pages != 3 || len(page.Estimates) != defaultPerPage {
			t.Fatalf("unexpected page: total=%d pages=%d len=%d", page.Total, page.Pages, len(page.Estimates))
		}
	})

	t.Run("last page is partial", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(makePage(25), nil)

		page, err := uc.List(context.Background(), ListEstimatesInput{Page: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Estimates) != 5 {
			t.Fatalf("expected 5 on last page, got %d", len(page.Estimates))
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(makePage(3), nil)

		page, err := uc.List(context.Background(), ListEstimatesInput{Page: 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Estimates) != 0 {
			t.Fatalf("expected empty page, got %d", len(page.Estimates))
		}
	})

	t.Run("per page is capped", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(makePage(1), nil)

		page, err := uc.List(context.Background(), ListEstimatesInput{PerPage: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.PerPage != maxPerPage {
			t.Fatalf("expected per_page capped at %d, got %d", maxPerPage, page.PerPage)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	t.Run("terminal estimate refuses update", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		if err := e.Approve("mgr-1", time.Now().UTC()); err != nil {
			t.Fatalf("approve: %v", err)
		}
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)

		desc := "new description"
		_, err := uc.Update(context.Background(), "EST-20250615-0001", UpdateEstimateInput{Description: &desc})
		var invalidState *entities.InvalidStateError
		if !errors.As(err, &invalidState) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("partial update saves", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) {
				if saved.Description != "hailstorm damage" {
					t.Fatalf("expected description applied, got %q", saved.Description)
				}
				if saved.CustomerID != "cust-1" {
					t.Fatalf("untouched field changed: %q", saved.CustomerID)
				}
				return saved, nil
			},
		)

		desc := "hailstorm damage"
		res, err := uc.Update(context.Background(), "EST-20250615-0001", UpdateEstimateInput{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Description != "hailstorm damage" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("clears completion date", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		due := time.Now().UTC().Add(72 * time.Hour)
		e.EstimatedCompletionDate = &due
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) {
				if saved.EstimatedCompletionDate != nil {
					t.Fatalf("expected completion date cleared")
				}
				return saved, nil
			},
		)

		if _, err := uc.Update(context.Background(), "EST-20250615-0001", UpdateEstimateInput{ClearEstimatedCompletionDate: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reassigned customer is verified", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(pendingEstimate("EST-20250615-0001"), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-2").Return(entities.Customer{}, nil)

		newCust := "cust-2"
		_, err := uc.Update(context.Background(), "EST-20250615-0001", UpdateEstimateInput{CustomerID: &newCust})
		var notFound *entities.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("pending deletes with version guard", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		e.Version = 4
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "EST-20250615-0001", int64(4)).Return(nil)

		if err := uc.Delete(context.Background(), "EST-20250615-0001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved refuses delete", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		if err := e.Approve("mgr-1", time.Now().UTC()); err != nil {
			t.Fatalf("approve: %v", err)
		}
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)

		err := uc.Delete(context.Background(), "EST-20250615-0001")
		var invalidState *entities.InvalidStateError
		if !errors.As(err, &invalidState) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})
}

func TestEstimateUseCase_ApproveReject(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(pendingEstimate("EST-20250615-0001"), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) {
				if saved.Status != entities.EstimateStatusApproved || saved.ApprovedBy != "mgr-1" {
					t.Fatalf("unexpected estimate: %+v", saved)
				}
				return saved, nil
			},
		)

		res, err := uc.Approve(context.Background(), "EST-20250615-0001", "mgr-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("approve terminal fails before save", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		e := pendingEstimate("EST-20250615-0001")
		if err := e.Reject("mgr-1", "no", time.Now().UTC()); err != nil {
			t.Fatalf("reject: %v", err)
		}
		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(e, nil)

		_, err := uc.Approve(context.Background(), "EST-20250615-0001", "mgr-2")
		var invalidState *entities.InvalidStateError
		if !errors.As(err, &invalidState) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("reject records reason", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(pendingEstimate("EST-20250615-0001"), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) { return saved, nil },
		)

		res, err := uc.Reject(context.Background(), "EST-20250615-0001", "mgr-1", "over budget")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusRejected || res.RejectionReason != "over budget" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})

	t.Run("version conflict surfaces", func(t *testing.T) {
		uc, m, ctrl := newEstimateUseCaseWithMocks(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByNumber(gomock.Any(), "EST-20250615-0001").Return(pendingEstimate("EST-20250615-0001"), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, entities.NewConflictError("estimate was modified concurrently"))

		_, err := uc.Approve(context.Background(), "EST-20250615-0001", "mgr-1")
		var conflict *entities.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})
}
