package memory

import (
	"context"
	"sync"

	"github.com/ccasync/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type pendingChange struct {
	change  change
	flushed bool
}

// UnitOfWork tracks the changes made through its repositories while a transaction is active.
// SaveChanges checks staged changes against committed state and flushes them into the
// transaction; Commit applies every flushed change to the Database at once.
// Without an active transaction, repository writes go straight to the Database.
type UnitOfWork struct {
	db     *Database
	logger *zap.Logger

	mu      sync.Mutex
	active  bool
	pending map[changeKey]*pendingChange
	order   []changeKey
}

// NewUnitOfWork creates a unit of work on db
func NewUnitOfWork(db *Database, logger *zap.Logger) *UnitOfWork {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnitOfWork{
		db:      db,
		logger:  logger,
		pending: make(map[changeKey]*pendingChange),
	}
}

// BeginTransaction starts a transaction
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active {
		return shared.ErrTransactionActive
	}
	u.active = true
	return nil
}

// InTransaction reports whether a transaction is active
func (u *UnitOfWork) InTransaction() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.active
}

// SaveChanges verifies the staged changes against committed state and flushes them into
// the transaction. It returns the number of aggregates flushed. On a verification failure
// nothing is flushed.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return 0, shared.ErrNoTransaction
	}

	staged := u.stagedLocked()
	if len(staged) == 0 {
		return 0, nil
	}

	u.db.mu.RLock()
	err := verifyAll(staged)
	u.db.mu.RUnlock()
	if err != nil {
		return 0, err
	}

	for _, p := range staged {
		p.flushed = true
	}
	u.logger.Debug("changes flushed", zap.Int("count", len(staged)))
	return len(staged), nil
}

// Commit applies every change of the transaction to the Database. Staged changes that
// were never saved are flushed first. If any change no longer matches committed state the
// whole transaction is left uncommitted and the error is returned.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return shared.ErrNoTransaction
	}

	changes := make([]*pendingChange, 0, len(u.order))
	for _, key := range u.order {
		changes = append(changes, u.pending[key])
	}

	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	if err := verifyAll(changes); err != nil {
		return err
	}
	for _, p := range changes {
		p.change.apply()
	}

	u.logger.Debug("transaction committed", zap.Int("changes", len(changes)))
	u.resetLocked()
	return nil
}

// Rollback discards every staged and flushed change and ends the transaction
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return shared.ErrNoTransaction
	}
	u.logger.Debug("transaction rolled back", zap.Int("discarded", len(u.order)))
	u.resetLocked()
	return nil
}

func (u *UnitOfWork) resetLocked() {
	u.active = false
	u.pending = make(map[changeKey]*pendingChange)
	u.order = nil
}

func (u *UnitOfWork) stagedLocked() []*pendingChange {
	staged := make([]*pendingChange, 0)
	for _, key := range u.order {
		if p := u.pending[key]; !p.flushed {
			staged = append(staged, p)
		}
	}
	return staged
}

// lookupLocked returns the pending change for key
func (u *UnitOfWork) lookupLocked(key changeKey) (*pendingChange, bool) {
	p, ok := u.pending[key]
	return p, ok
}

// stageLocked records c, replacing any pending change for the same aggregate.
// A replaced change must be saved again before it is considered flushed.
func (u *UnitOfWork) stageLocked(c change) {
	key := keyOf(c)
	if _, exists := u.pending[key]; !exists {
		u.order = append(u.order, key)
	}
	u.pending[key] = &pendingChange{change: c}
}

// discardLocked forgets the pending change for key
func (u *UnitOfWork) discardLocked(key changeKey) {
	delete(u.pending, key)
	for i, k := range u.order {
		if k == key {
			u.order = append(u.order[:i], u.order[i+1:]...)
			return
		}
	}
}

func verifyAll(changes []*pendingChange) error {
	for _, p := range changes {
		if err := p.change.verify(); err != nil {
			return err
		}
	}
	return nil
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
