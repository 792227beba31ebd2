package memory

import (
	appsyncjob "github.com/ccasync/backend/internal/application/syncjob"
	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"go.uber.org/zap"
)

// SyncJobRepository is the in-memory syncjob.SyncJobRepository
type SyncJobRepository struct {
	*Repository[*syncjob.SyncJob]
}

// NewSyncJobRepository creates a sync job repository whose writes join uow
func NewSyncJobRepository(store *Store[*syncjob.SyncJob], uow *UnitOfWork) *SyncJobRepository {
	return &SyncJobRepository{Repository: NewRepository(store, uow)}
}

// SyncJobSessionFactory opens sessions over an in-memory database
type SyncJobSessionFactory struct {
	db     *Database
	jobs   *Store[*syncjob.SyncJob]
	logger *zap.Logger
}

// NewSyncJobSessionFactory creates a session factory for the sync job store
func NewSyncJobSessionFactory(db *Database, jobs *Store[*syncjob.SyncJob], logger *zap.Logger) *SyncJobSessionFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncJobSessionFactory{db: db, jobs: jobs, logger: logger}
}

// NewSession opens a session with its own unit of work
func (f *SyncJobSessionFactory) NewSession() appsyncjob.Session {
	uow := NewUnitOfWork(f.db, f.logger)
	return &syncJobSession{
		uow:  uow,
		jobs: NewSyncJobRepository(f.jobs, uow),
	}
}

type syncJobSession struct {
	uow  *UnitOfWork
	jobs *SyncJobRepository
}

func (s *syncJobSession) UnitOfWork() shared.UnitOfWork   { return s.uow }
func (s *syncJobSession) Jobs() syncjob.SyncJobRepository { return s.jobs }

var (
	_ syncjob.SyncJobRepository = (*SyncJobRepository)(nil)
	_ appsyncjob.SessionFactory = (*SyncJobSessionFactory)(nil)
	_ appsyncjob.Session        = (*syncJobSession)(nil)
)
