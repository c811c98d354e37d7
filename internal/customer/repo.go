// Package customer provides the customer model, its repository over a
// store.Provider, the service layer and the HTTP handlers.
package customer

import (
	"context"

	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/guard"
	"github.com/MikeMC777/ordenes-api/internal/store"
)

// Repository reports a missing row as a nil result or false, never as an
// error.
type Repository interface {
	Add(ctx context.Context, newCustomer *Customer) (*Customer, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetAll(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int) (*Customer, error)
	Update(ctx context.Context, updatedCustomer *Customer) (*Customer, error)
}

type StoreRepo struct {
	store store.Provider[entity.Customer]
}

func NewStoreRepo(p store.Provider[entity.Customer]) *StoreRepo { return &StoreRepo{store: p} }

func (r *StoreRepo) Add(ctx context.Context, newCustomer *Customer) (*Customer, error) {
	if err := guard.NotNil(newCustomer, "newCustomer"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e := toEntity(newCustomer)
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

func (r *StoreRepo) GetAll(ctx context.Context) ([]Customer, error) {
	rows, err := r.store.Session().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Customer, 0, len(rows))
	for _, e := range rows {
		out = append(out, *toModel(e))
	}
	return out, nil
}

func (r *StoreRepo) Get(ctx context.Context, id int) (*Customer, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	e, err := r.store.Session().FindByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toModel(e), nil
}

func (r *StoreRepo) Update(ctx context.Context, updatedCustomer *Customer) (*Customer, error) {
	if err := guard.NotNil(updatedCustomer, "updatedCustomer"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedCustomer.ID, "updatedCustomer.Id"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e, err := s.FindByID(ctx, updatedCustomer.ID)
	if err != nil || e == nil {
		return nil, err
	}
	applyTo(e, updatedCustomer)
	if err := s.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return toModel(e), nil
}
