// Package memstore is an in-process store.Provider. Rows are held by value,
// so changes made to an entity only become visible after SaveChanges.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MikeMC777/ordenes-api/internal/store"
)

// ErrDuplicateKey is returned by SaveChanges when an added entity carries a
// key that is already taken.
var ErrDuplicateKey = errors.New("memstore: duplicate key")

// Entity constrains P to a pointer to E carrying an integer key.
type Entity[E any] interface {
	*E
	store.Keyed
}

type Provider[E any, P Entity[E]] struct {
	mu     sync.RWMutex
	rows   map[int]E
	nextID int
}

func New[E any, P Entity[E]]() *Provider[E, P] {
	return &Provider[E, P]{rows: make(map[int]E), nextID: 1}
}

func (p *Provider[E, P]) Session() store.Session[E] {
	return &session[E, P]{p: p}
}

// Len reports the number of committed rows.
func (p *Provider[E, P]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rows)
}

type session[E any, P Entity[E]] struct {
	p       *Provider[E, P]
	tracked []*E
	added   []*E
	removed []*E
}

func (s *session[E, P]) FindByID(ctx context.Context, id int) (*E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.p.mu.RLock()
	row, ok := s.p.rows[id]
	s.p.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	e := row
	s.tracked = append(s.tracked, &e)
	return &e, nil
}

func (s *session[E, P]) Add(ctx context.Context, e *E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.added = append(s.added, e)
	return nil
}

func (s *session[E, P]) Remove(ctx context.Context, e *E) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	kept := s.tracked[:0]
	for _, t := range s.tracked {
		if t != e {
			kept = append(kept, t)
		}
	}
	s.tracked = kept
	s.removed = append(s.removed, e)
	return nil
}

func (s *session[E, P]) List(ctx context.Context) ([]*E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.p.mu.RLock()
	out := make([]*E, 0, len(s.p.rows))
	for _, row := range s.p.rows {
		e := row
		out = append(out, &e)
	}
	s.p.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return P(out[i]).Key() < P(out[j]).Key() })
	return out, nil
}

func (s *session[E, P]) SaveChanges(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.p.mu.Lock()
	defer s.p.mu.Unlock()

	// Reject the whole batch before touching any row.
	explicit := make(map[int]bool, len(s.added))
	for _, e := range s.added {
		key := P(e).Key()
		if key == 0 {
			continue
		}
		if _, taken := s.p.rows[key]; taken || explicit[key] {
			return fmt.Errorf("%w %d", ErrDuplicateKey, key)
		}
		explicit[key] = true
	}

	for _, e := range s.added {
		k := P(e)
		if k.Key() == 0 {
			for explicit[s.p.nextID] {
				s.p.nextID++
			}
			k.SetKey(s.p.nextID)
		}
		if k.Key() >= s.p.nextID {
			s.p.nextID = k.Key() + 1
		}
		s.p.rows[k.Key()] = *e
	}
	for _, e := range s.tracked {
		s.p.rows[P(e).Key()] = *e
	}
	for _, e := range s.removed {
		delete(s.p.rows, P(e).Key())
	}
	s.tracked = append(s.tracked, s.added...)
	s.added, s.removed = nil, nil
	return nil
}
