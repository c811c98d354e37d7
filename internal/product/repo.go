// Package product provides the product model, repository, service and HTTP
// handlers.
package product

import (
	"context"

	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/guard"
	"github.com/MikeMC777/ordenes-api/internal/store"
)

type Repository interface {
	Add(ctx context.Context, newProduct *Product) (*Product, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetAll(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (*Product, error)
	Update(ctx context.Context, updatedProduct *Product) (*Product, error)
}

type StoreRepo struct {
	store store.Provider[entity.Product]
}

func NewStoreRepo(p store.Provider[entity.Product]) *StoreRepo { return &StoreRepo{store: p} }

func (r *StoreRepo) Add(ctx context.Context, newProduct *Product) (*Product, error) {
	if err := guard.NotNil(newProduct, "newProduct"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e := toEntity(newProduct)
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

func (r *StoreRepo) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.store.Session().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(rows))
	for _, e := range rows {
		out = append(out, *toModel(e))
	}
	return out, nil
}

func (r *StoreRepo) Get(ctx context.Context, id int) (*Product, error) {
	if err := guard.NotZero(id, "id"); err != nil {
		return nil, err
	}
	e, err := r.store.Session().FindByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toModel(e), nil
}

func (r *StoreRepo) Update(ctx context.Context, updatedProduct *Product) (*Product, error) {
	if err := guard.NotNil(updatedProduct, "updatedProduct"); err != nil {
		return nil, err
	}
	if err := guard.NotZero(updatedProduct.ID, "updatedProduct.Id"); err != nil {
		return nil, err
	}
	s := r.store.Session()
	e, err := s.FindByID(ctx, updatedProduct.ID)
	if err != nil || e == nil {
		return nil, err
	}
	applyTo(e, updatedProduct)
	if err := s.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return toModel(e), nil
}
