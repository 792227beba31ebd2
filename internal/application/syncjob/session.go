package syncjob

import (
	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/syncjob"
)

// Session pairs a unit of work with the sync job repository bound to it.
// All repository writes made through a session join its transaction.
type Session interface {
	// UnitOfWork returns the session's unit of work
	UnitOfWork() shared.UnitOfWork
	// Jobs returns the sync job repository scoped to the session's transaction
	Jobs() syncjob.SyncJobRepository
}

// SessionFactory opens a new session per application operation
type SessionFactory interface {
	NewSession() Session
}
