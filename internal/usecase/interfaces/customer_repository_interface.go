package interfaces

import (
	"context"
	"erdbeergourmet/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for customers.
//
// FindOrCreate is atomic per email: concurrent callers end up with the same
// stored customer, and created reports which call inserted it.

type ICustomerRepository interface {
	FindOrCreate(ctx context.Context, c entities.Customer) (customer entities.Customer, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	FindByEmail(ctx context.Context, email string) (entities.Customer, error)
	BackfillIdentity(ctx context.Context, id string, identity entities.Customer) (entities.Customer, error)
}
