// Package store declares the persistence capabilities the repositories
// depend on. A Session is one unit of work: entities found through it are
// tracked, adds and removes are staged, and nothing reaches the backing
// store until SaveChanges.
package store

import "context"

// Keyed is implemented by persistence entities with an integer identity.
type Keyed interface {
	Key() int
	SetKey(id int)
}

type Session[E any] interface {
	// FindByID returns nil, nil when no row has the given id.
	FindByID(ctx context.Context, id int) (*E, error)
	Add(ctx context.Context, e *E) error
	Remove(ctx context.Context, e *E) error
	// List returns every row ordered by id. Listed rows are not tracked.
	List(ctx context.Context) ([]*E, error)
	SaveChanges(ctx context.Context) error
}

type Provider[E any] interface {
	Session() Session[E]
}
