// Package order tracks orders placed by customers for products.
package order

import (
	"context"
	"time"

	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/guard"
	"github.com/MikeMC777/ordenes-api/internal/store"
)

type Repository interface {
	Add(ctx context.Context, newOrder *Order) (*Order, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetAll(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int) (*Order, error)
	Update(ctx context.Context, updatedOrder *Order) (*Order, error)
}

type StoreRepo struct {
	store store.Provider[entity.Order]
	now   func() time.Time
}

func NewStoreRepo(p store.Provider[entity.Order]) *StoreRepo {
	return &StoreRepo{store: p, now: func() time.Time { return time.Now().UTC() }}
}

// Add stamps CreatedDate and UpdatedDate when the caller left them zero.
func (r *StoreRepo) Add(ctx context.Context, newOrder *Order) (*Order, error) {
	if err := guard.NotNil(newOrder, "newOrder"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e := toEntity(newOrder)
	now := r.now()
	if e.CreatedDate.IsZero() {
		e.CreatedDate = now
	}
	if e.UpdatedDate.IsZero() {
		e.UpdatedDate = now
	}
	if err := s.Add(ctx, e); err != nil {
		return nil, err
	}
	if err := s.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return toModel(e), nil
}

func (r *StoreRepo) Delete(ctx context.Context, id int) (bool, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return false, err
	}
	s := r.store.Session()
	e, err := s.FindByID(ctx, id)
	if err != nil || e == nil {
		return false, err
	}
	if err := s.Remove(ctx, e); err != nil {
		return false, err
	}
	if err := s.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *StoreRepo) GetAll(ctx context.Context) ([]Order, error) {
	rows, err := r.store.Session().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(rows))
	for _, e := range rows {
		out = append(out, *toModel(e))
	}
	return out, nil
}

func (r *StoreRepo) Get(ctx context.Context, id int) (*Order, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	e, err := r.store.Session().FindByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toModel(e), nil
}

// Update keeps CreatedDate and moves UpdatedDate to now.
func (r *StoreRepo) Update(ctx context.Context, updatedOrder *Order) (*Order, error) {
	if err := guard.NotNil(updatedOrder, "updatedOrder"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedOrder.ID, "updatedOrder.Id"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e, err := s.FindByID(ctx, updatedOrder.ID)
	if err != nil || e == nil {
		return nil, err
	}
	applyTo(e, updatedOrder)
	e.UpdatedDate = r.now()
	if err := s.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return toModel(e), nil
}
