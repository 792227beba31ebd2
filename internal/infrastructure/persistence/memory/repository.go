package memory

import (
	"context"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository implements shared.Repository[T] over a Store. Reads see committed state
// overlaid with the pending changes of the bound unit of work.
type Repository[T shared.AggregateRoot] struct {
	store *Store[T]
	uow   *UnitOfWork
}

// NewRepository creates a repository for store whose writes join uow's transaction
func NewRepository[T shared.AggregateRoot](store *Store[T], uow *UnitOfWork) *Repository[T] {
	if uow == nil {
		panic("memory: NewRepository requires a unit of work")
	}
	if uow.db != store.db {
		panic("memory: store and unit of work belong to different databases")
	}
	return &Repository[T]{store: store, uow: uow}
}

// GetByID returns a copy of the aggregate with id
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	if c, ok := r.pendingLocked(id); ok {
		if c.kind == changeDelete {
			return zero, shared.ErrNotFound(r.store.aggregateType, id)
		}
		return r.store.clone(c.value), nil
	}

	r.store.db.mu.RLock()
	defer r.store.db.mu.RUnlock()

	item, ok := r.store.committed(id)
	if !ok {
		return zero, shared.ErrNotFound(r.store.aggregateType, id)
	}
	return r.store.clone(item), nil
}

// GetBySpecification returns copies of every aggregate satisfying spec, oldest first
func (r *Repository[T]) GetBySpecification(ctx context.Context, spec shared.Specification[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	r.store.db.mu.RLock()
	items := r.store.snapshot()
	r.store.db.mu.RUnlock()

	for _, key := range r.uow.order {
		if key.aggregateType != r.store.aggregateType {
			continue
		}
		c := r.uow.pending[key].change.(*storeChange[T])
		if c.kind == changeDelete {
			delete(items, c.id)
			continue
		}
		items[c.id] = r.store.clone(c.value)
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if spec == nil || spec.IsSatisfiedBy(item) {
			result = append(result, item)
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

// Add stores a new aggregate. Returns "<Type>.AlreadyExists" if the id is taken.
func (r *Repository[T]) Add(ctx context.Context, aggregate T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := aggregate.GetID()
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	if _, ok := r.pendingLocked(id); ok {
		return alreadyExists(r.store.aggregateType, id)
	}

	c := &storeChange[T]{
		store:           r.store,
		kind:            changeInsert,
		id:              id,
		expectedVersion: aggregate.GetVersion(),
		value:           r.store.clone(aggregate),
	}
	return r.writeLocked(c)
}

// Update stores a modified aggregate. The aggregate's version must match the stored
// version; on success the version is incremented on both the stored copy and aggregate.
func (r *Repository[T]) Update(ctx context.Context, aggregate T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := aggregate.GetID()
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	if prior, ok := r.pendingLocked(id); ok {
		if prior.kind == changeDelete {
			return shared.ErrNotFound(r.store.aggregateType, id)
		}
		if prior.value.GetVersion() != aggregate.GetVersion() {
			return concurrencyConflict(r.store.aggregateType, id, prior.value.GetVersion(), aggregate.GetVersion())
		}
		// Same transaction: keep the original expectation and replace the value.
		r.uow.stageLocked(&storeChange[T]{
			store:           r.store,
			kind:            prior.kind,
			id:              id,
			expectedVersion: prior.expectedVersion,
			value:           r.store.clone(aggregate),
		})
		return nil
	}

	value := r.store.clone(aggregate)
	value.IncrementVersion()
	c := &storeChange[T]{
		store:           r.store,
		kind:            changeUpdate,
		id:              id,
		expectedVersion: aggregate.GetVersion(),
		value:           value,
	}
	if err := r.writeLocked(c); err != nil {
		return err
	}
	aggregate.IncrementVersion()
	return nil
}

// Delete removes the aggregate with id
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()

	key := changeKey{aggregateType: r.store.aggregateType, id: id}
	if prior, ok := r.pendingLocked(id); ok {
		switch prior.kind {
		case changeDelete:
			return shared.ErrNotFound(r.store.aggregateType, id)
		case changeInsert:
			r.uow.discardLocked(key)
			return nil
		}
	}

	return r.writeLocked(&storeChange[T]{store: r.store, kind: changeDelete, id: id})
}

// pendingLocked returns this repository's pending change for id in the active transaction
func (r *Repository[T]) pendingLocked(id uuid.UUID) (*storeChange[T], bool) {
	if !r.uow.active {
		return nil, false
	}
	p, ok := r.uow.lookupLocked(changeKey{aggregateType: r.store.aggregateType, id: id})
	if !ok {
		return nil, false
	}
	return p.change.(*storeChange[T]), true
}

// writeLocked stages c in the active transaction or applies it immediately.
// Either way c is first checked against committed state.
func (r *Repository[T]) writeLocked(c *storeChange[T]) error {
	if r.uow.active {
		r.store.db.mu.RLock()
		err := c.verify()
		r.store.db.mu.RUnlock()
		if err != nil {
			return err
		}
		r.uow.stageLocked(c)
		return nil
	}

	r.store.db.mu.Lock()
	defer r.store.db.mu.Unlock()
	if err := c.verify(); err != nil {
		return err
	}
	c.apply()
	return nil
}

var _ shared.Repository[shared.AggregateRoot] = (*Repository[shared.AggregateRoot])(nil)
