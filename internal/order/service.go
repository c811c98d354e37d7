package order

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

func (s *Service) Add(ctx context.Context, newOrder *Order) (*Order, error) {
	if err := guard.NotNil(newOrder, "newOrder"); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, newOrder)
}

func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Order, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, updatedOrder *Order) (*Order, error) {
	if err := guard.NotNil(updatedOrder, "updatedOrder"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedOrder.ID, "updatedOrder.Id"); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, updatedOrder)
}
