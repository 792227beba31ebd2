package shared

import (
	"context"

	"github.com/google/uuid"
)

// Specification selects aggregates matching a business rule
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecificationFunc adapts a predicate to Specification
type SpecificationFunc[T any] func(candidate T) bool

// IsSatisfiedBy calls f
func (f SpecificationFunc[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And returns a specification satisfied when every spec is satisfied
func And[T any](specs ...Specification[T]) Specification[T] {
	return SpecificationFunc[T](func(candidate T) bool {
		for _, s := range specs {
			if !s.IsSatisfiedBy(candidate) {
				return false
			}
		}
		return true
	})
}

// Repository is the persistence contract for an aggregate type.
// GetByID returns an error satisfying IsNotFound when no aggregate has the id.
type Repository[T AggregateRoot] interface {
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	GetBySpecification(ctx context.Context, spec Specification[T]) ([]T, error)
	Add(ctx context.Context, aggregate T) error
	Update(ctx context.Context, aggregate T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitOfWork groups repository changes so that one SaveChanges flushes
// state together with the domain events raised while producing it
type UnitOfWork interface {
	// BeginTransaction starts a transaction
	BeginTransaction(ctx context.Context) error
	// SaveChanges flushes staged changes and returns the number of aggregates written
	SaveChanges(ctx context.Context) (int, error)
	// Commit commits the active transaction
	Commit(ctx context.Context) error
	// Rollback discards the active transaction
	Rollback(ctx context.Context) error
}
