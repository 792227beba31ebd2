package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTenant = valueobject.MustNewTenantID("clean-power-sf")

type fixture struct {
	db    *Database
	store *Store[*syncjob.SyncJob]
}

func newFixture() *fixture {
	db := NewDatabase()
	return &fixture{
		db:    db,
		store: NewStore(db, syncjob.AggregateTypeSyncJob, (*syncjob.SyncJob).Clone),
	}
}

func (f *fixture) session() (*UnitOfWork, *Repository[*syncjob.SyncJob]) {
	uow := NewUnitOfWork(f.db, nil)
	return uow, NewRepository(f.store, uow)
}

func newJob(t *testing.T) *syncjob.SyncJob {
	t.Helper()
	result := syncjob.Create(testTenant, syncjob.SyncJobTypeFullSync, nil, nil)
	require.True(t, result.IsSuccess())
	return result.Value()
}

func TestRepository_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, repo := f.session()
	job := newJob(t)

	require.NoError(t, repo.Add(ctx, job))
	assert.Equal(t, 1, f.store.Len())

	loaded, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.NotSame(t, job, loaded)
	assert.Empty(t, loaded.DomainEvents())
	assert.Equal(t, syncjob.SyncJobStatusPending, loaded.Status())

	require.True(t, loaded.Start(10).IsSuccess())
	require.NoError(t, repo.Update(ctx, loaded))
	assert.Equal(t, 2, loaded.GetVersion())

	again, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, syncjob.SyncJobStatusRunning, again.Status())
	assert.Equal(t, 2, again.GetVersion())

	require.NoError(t, repo.Delete(ctx, job.ID))
	_, err = repo.GetByID(ctx, job.ID)
	assert.True(t, shared.IsNotFound(err))
}

func TestRepository_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, repo := f.session()
	job := newJob(t)
	require.NoError(t, repo.Add(ctx, job))

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		require.Error(t, err)
		domainErr, ok := shared.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "SyncJob.NotFound", domainErr.Code)
	})

	t.Run("duplicate add", func(t *testing.T) {
		err := repo.Add(ctx, job)
		domainErr, ok := shared.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "SyncJob.AlreadyExists", domainErr.Code)
	})

	t.Run("stale update", func(t *testing.T) {
		first, err := repo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		second, err := repo.GetByID(ctx, job.ID)
		require.NoError(t, err)

		require.True(t, first.Start(5).IsSuccess())
		require.NoError(t, repo.Update(ctx, first))

		require.True(t, second.Cancel("operator request").IsSuccess())
		err = repo.Update(ctx, second)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.Equal(t, 1, second.GetVersion())
	})

	t.Run("update or delete of missing id", func(t *testing.T) {
		assert.True(t, shared.IsNotFound(repo.Update(ctx, newJob(t))))
		assert.True(t, shared.IsNotFound(repo.Delete(ctx, uuid.New())))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.GetByID(cancelled, job.ID)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepository_StoredCopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, repo := f.session()
	job := newJob(t)
	require.NoError(t, repo.Add(ctx, job))

	require.True(t, job.Start(10).IsSuccess())

	loaded, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, syncjob.SyncJobStatusPending, loaded.Status())

	require.True(t, loaded.Start(10).IsSuccess())
	require.NoError(t, repo.Update(ctx, loaded))
	require.True(t, loaded.RecordError("CRM_TIMEOUT", "timed out", nil).IsSuccess())

	reloaded, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, syncjob.SyncJobStatusRunning, reloaded.Status())
	assert.Zero(t, reloaded.ErrorCount())
}

func TestRepository_GetBySpecification(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, repo := f.session()

	jobs := make([]*syncjob.SyncJob, 3)
	for i := range jobs {
		jobs[i] = newJob(t)
		jobs[i].CreatedAt = time.Date(2026, 1, 3-i, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Add(ctx, jobs[i]))
	}
	running, err := repo.GetByID(ctx, jobs[1].ID)
	require.NoError(t, err)
	require.True(t, running.Start(1).IsSuccess())
	require.True(t, running.Complete(syncjob.NewSyncJobStatistics(1, 1, 1, 0, 0).Value()).IsSuccess())
	require.NoError(t, repo.Update(ctx, running))

	all, err := repo.GetBySpecification(ctx, syncjob.ByTenant(testTenant))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, jobs[2].ID, all[0].ID)
	assert.Equal(t, jobs[1].ID, all[1].ID)
	assert.Equal(t, jobs[0].ID, all[2].ID)

	active, err := repo.GetBySpecification(ctx, syncjob.Active())
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, jobs[2].ID, active[0].ID)
	assert.Equal(t, jobs[0].ID, active[1].ID)

	everything, err := repo.GetBySpecification(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestNewStore_Panics(t *testing.T) {
	db := NewDatabase()
	NewStore(db, "SyncJob", (*syncjob.SyncJob).Clone)

	assert.Panics(t, func() { NewStore(db, "SyncJob", (*syncjob.SyncJob).Clone) })
	assert.Panics(t, func() { NewStore[*syncjob.SyncJob](db, "Other", nil) })
}

func TestNewRepository_Panics(t *testing.T) {
	f := newFixture()
	other := NewUnitOfWork(NewDatabase(), nil)

	assert.Panics(t, func() { NewRepository(f.store, nil) })
	assert.Panics(t, func() { NewRepository(f.store, other) })
}

