package memory

import (
	"sort"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Store keeps the committed aggregates of one type. Aggregates are cloned on the way
// in and on the way out so callers never share memory with committed state.
type Store[T shared.AggregateRoot] struct {
	db            *Database
	aggregateType string
	clone         func(T) T
	items         map[uuid.UUID]T
}

// NewStore registers a store for aggregateType on db. clone must return a deep copy
// without pending domain events, e.g. (*syncjob.SyncJob).Clone.
// Panics if the aggregate type is already registered or clone is nil.
func NewStore[T shared.AggregateRoot](db *Database, aggregateType string, clone func(T) T) *Store[T] {
	if clone == nil {
		panic("memory: NewStore requires a clone function")
	}
	db.register(aggregateType)
	return &Store[T]{
		db:            db,
		aggregateType: aggregateType,
		clone:         clone,
		items:         make(map[uuid.UUID]T),
	}
}

// AggregateType returns the aggregate type name used in error codes
func (s *Store[T]) AggregateType() string {
	return s.aggregateType
}

// Len returns the number of committed aggregates
func (s *Store[T]) Len() int {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return len(s.items)
}

// committed returns the stored aggregate without cloning. Caller holds db.mu.
func (s *Store[T]) committed(id uuid.UUID) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// snapshot returns clones of every committed aggregate. Caller holds db.mu.
func (s *Store[T]) snapshot() map[uuid.UUID]T {
	result := make(map[uuid.UUID]T, len(s.items))
	for id, item := range s.items {
		result[id] = s.clone(item)
	}
	return result
}

// storeChange is a pending write of one aggregate
type storeChange[T shared.AggregateRoot] struct {
	store           *Store[T]
	kind            changeKind
	id              uuid.UUID
	expectedVersion int
	value           T
}

func (c *storeChange[T]) storeName() string      { return c.store.aggregateType }
func (c *storeChange[T]) aggregateID() uuid.UUID { return c.id }

func (c *storeChange[T]) verify() error {
	current, exists := c.store.committed(c.id)
	switch c.kind {
	case changeInsert:
		if exists {
			return alreadyExists(c.store.aggregateType, c.id)
		}
	case changeUpdate:
		if !exists {
			return shared.ErrNotFound(c.store.aggregateType, c.id)
		}
		if current.GetVersion() != c.expectedVersion {
			return concurrencyConflict(c.store.aggregateType, c.id, c.expectedVersion, current.GetVersion())
		}
	case changeDelete:
		if !exists {
			return shared.ErrNotFound(c.store.aggregateType, c.id)
		}
	}
	return nil
}

func (c *storeChange[T]) apply() {
	if c.kind == changeDelete {
		delete(c.store.items, c.id)
		return
	}
	c.store.items[c.id] = c.store.clone(c.value)
}

func sortByCreatedAt[T shared.AggregateRoot](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].GetCreatedAt(), items[j].GetCreatedAt()
		if a.Equal(b) {
			return items[i].GetID().String() < items[j].GetID().String()
		}
		return a.Before(b)
	})
}
