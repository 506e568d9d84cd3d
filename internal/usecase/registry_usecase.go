package usecase

import (
	"context"
	"strings"
	"time"

	"autonova/internal/domain/entities"
	"autonova/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Registry usecases manage the reference data estimates point at: customers,
// their vehicles, and insurance companies.

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if strings.TrimSpace(c.FirstName) == "" {
		return entities.Customer{}, entities.NewValidationError("first_name", "is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return entities.Customer{}, entities.NewValidationError("last_name", "is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return entities.Customer{}, entities.NewValidationError("phone", "is required")
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, entities.NewNotFoundError("customer", id)
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if strings.TrimSpace(v.CustomerID) == "" {
		return entities.Vehicle{}, entities.NewValidationError("customer_id", "is required")
	}
	if strings.TrimSpace(v.Make) == "" {
		return entities.Vehicle{}, entities.NewValidationError("make", "is required")
	}
	if strings.TrimSpace(v.Model) == "" {
		return entities.Vehicle{}, entities.NewValidationError("model", "is required")
	}
	if v.Year <= 0 {
		return entities.Vehicle{}, entities.NewValidationError("year", "must be greater than 0")
	}

	owner, err := u.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, entities.NewNotFoundError("customer", v.CustomerID)
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	v, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, entities.NewNotFoundError("vehicle", id)
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

type IInsuranceCompanyUseCase interface {
	Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error)
	GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error)
	List(ctx context.Context) ([]entities.InsuranceCompany, error)
}

type InsuranceCompanyUseCase struct {
	repo interfaces.IInsuranceCompanyRepository
}

var _ IInsuranceCompanyUseCase = (*InsuranceCompanyUseCase)(nil)

func NewInsuranceCompanyUseCase(repo interfaces.IInsuranceCompanyRepository) *InsuranceCompanyUseCase {
	return &InsuranceCompanyUseCase{repo: repo}
}

func (u *InsuranceCompanyUseCase) Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
	if strings.TrimSpace(ic.CompanyName) == "" {
		return entities.InsuranceCompany{}, entities.NewValidationError("company_name", "is required")
	}
	if strings.TrimSpace(ic.Phone) == "" {
		return entities.InsuranceCompany{}, entities.NewValidationError("phone", "is required")
	}

	now := time.Now().UTC()
	ic.ID = uuid.NewString()
	ic.CreatedAt = now
	ic.UpdatedAt = now
	return u.repo.Create(ctx, ic)
}

func (u *InsuranceCompanyUseCase) GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error) {
	ic, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	if ic.ID == "" {
		return entities.InsuranceCompany{}, entities.NewNotFoundError("insurance company", id)
	}
	return ic, nil
}

func (u *InsuranceCompanyUseCase) List(ctx context.Context) ([]entities.InsuranceCompany, error) {
	return u.repo.List(ctx)
}
