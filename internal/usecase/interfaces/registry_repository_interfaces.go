package interfaces

import (
	"context"

	"autonova/internal/domain/entities"
)

// Registry repositories back the reference data an estimate points at.
// Lookups return the zero value when the record is absent; callers translate
// that into NotFoundError.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
}

type IInsuranceCompanyRepository interface {
	Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error)
	GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error)
	List(ctx context.Context) ([]entities.InsuranceCompany, error)
}

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
