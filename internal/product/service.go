package product

import (
	"context"

	"github.com/MikeMC777/ordenes-api/internal/guard"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, newProduct *Product) (*Product, error) {
	if err := guard.NotNil(newProduct, "newProduct"); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, newProduct)
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Product, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, updatedProduct *Product) (*Product, error) {
	if err := guard.NotNil(updatedProduct, "updatedProduct"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedProduct.ID, "updatedProduct.Id"); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, updatedProduct)
}
