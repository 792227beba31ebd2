// Package memory provides in-process repositories and a unit of work for aggregates.
// Committed state lives in a Database; each UnitOfWork keeps its own uncommitted changes
// and applies them to the Database atomically on Commit.
package memory

import (
	"fmt"
	"sync"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Database holds the committed aggregates of every store created on it.
// A single lock covers all stores so a commit touching several aggregate types is atomic.
type Database struct {
	mu     sync.RWMutex
	stores map[string]struct{}
}

// NewDatabase creates an empty database
func NewDatabase() *Database {
	return &Database{stores: make(map[string]struct{})}
}

func (db *Database) register(aggregateType string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.stores[aggregateType]; exists {
		panic(fmt.Sprintf("memory: store for %s already registered", aggregateType))
	}
	db.stores[aggregateType] = struct{}{}
}

// changeKind identifies what a pending change does to the committed state
type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeDelete
)

func (k changeKind) String() string {
	switch k {
	case changeInsert:
		return "insert"
	case changeUpdate:
		return "update"
	default:
		return "delete"
	}
}

// change is a pending write against one store. verify and apply are called with db.mu held.
type change interface {
	storeName() string
	aggregateID() uuid.UUID
	verify() error
	apply()
}

type changeKey struct {
	aggregateType string
	id            uuid.UUID
}

func keyOf(c change) changeKey {
	return changeKey{aggregateType: c.storeName(), id: c.aggregateID()}
}

func alreadyExists(aggregateType string, id uuid.UUID) shared.Error {
	return shared.NewError(aggregateType+".AlreadyExists", fmt.Sprintf("%s with id %s already exists", aggregateType, id))
}

func concurrencyConflict(aggregateType string, id uuid.UUID, expected, actual int) error {
	return fmt.Errorf("%s %s: expected version %d, found %d: %w",
		aggregateType, id, expected, actual, shared.ErrConcurrencyConflict)
}
