// Package gormstore implements store.Session on top of gorm.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MikeMC777/ordenes-api/internal/store"
)

type Provider[E any] struct{ db *gorm.DB }

func New[E any](db *gorm.DB) *Provider[E] { return &Provider[E]{db: db} }

func (p *Provider[E]) Session() store.Session[E] {
	return &session[E]{db: p.db}
}

type session[E any] struct {
	db      *gorm.DB
	tracked []*E
	added   []*E
	removed []*E
}

func (s *session[E]) FindByID(ctx context.Context, id int) (*E, error) {
	var e E
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	s.tracked = append(s.tracked, &e)
	return &e, nil
}

func (s *session[E]) Add(_ context.Context, e *E) error {
	s.added = append(s.added, e)
	return nil
}

func (s *session[E]) Remove(_ context.Context, e *E) error {
	s.tracked = without(s.tracked, e)
	s.removed = append(s.removed, e)
	return nil
}

func (s *session[E]) List(ctx context.Context) ([]*E, error) {
	list := make([]*E, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SaveChanges flushes inserts, then updates of tracked rows, then deletes,
// inside one transaction.
func (s *session[E]) SaveChanges(ctx context.Context) error {
	if len(s.added)+len(s.tracked)+len(s.removed) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range s.added {
			if err := tx.Omit(clause.Associations).Create(e).Error; err != nil {
				return err
			}
		}
		for _, e := range s.tracked {
			if err := tx.Omit(clause.Associations).Save(e).Error; err != nil {
				return err
			}
		}
		for _, e := range s.removed {
			if err := tx.Delete(e).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.tracked = append(s.tracked, s.added...)
	s.added, s.removed = nil, nil
	return nil
}

func without[E any](list []*E, e *E) []*E {
	out := list[:0]
	for _, x := range list {
		if x != e {
			out = append(out, x)
		}
	}
	return out
}
