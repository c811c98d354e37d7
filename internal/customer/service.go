package customer

import (
	"context"

	"github.com/MikeMC777/ordenes-api/internal/guard"
)

// Service checks its arguments on its own before delegating, so callers
// other than the HTTP handlers get the same errors.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, newCustomer *Customer) (*Customer, error) {
	if err := guard.NotNil(newCustomer, "newCustomer"); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, newCustomer)
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Customer, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, updatedCustomer *Customer) (*Customer, error) {
	if err := guard.NotNil(updatedCustomer, "updatedCustomer"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedCustomer.ID, "updatedCustomer.Id"); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, updatedCustomer)
}
