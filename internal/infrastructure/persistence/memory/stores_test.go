package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ccasync/backend/internal/domain/account"
	"github.com/ccasync/backend/internal/domain/customer"
	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onboarding struct {
	customer *customer.Customer
	utility  *account.UtilityAccount
	ldc      *account.LdcAccount
}

func newOnboarding(t *testing.T) onboarding {
	t.Helper()
	address := valueobject.NewAddress("525 Golden Gate Ave", "San Francisco", "CA", "94102").Value()

	c := customer.NewCustomer(
		testTenant,
		valueobject.NewCustomerName("Ada", "Lovelace").Value(),
		valueobject.NewEmailAddress("ada@example.com").Value(),
	).Value()
	ldc := account.NewLdcAccount(
		testTenant,
		"pge",
		valueobject.NewAccountNumber("PGE-0042").Value(),
		valueobject.NewMeterNumber("M-1001").Value(),
		account.WithServiceAddress(address),
	).Value()
	utility := account.NewUtilityAccount(
		testTenant,
		c.ID,
		valueobject.NewAccountNumber("CCA-0001").Value(),
		"Pacific Gas and Electric",
		address,
	).Value()
	require.True(t, utility.LinkLdcAccount(ldc.ID).IsSuccess())

	return onboarding{customer: c, utility: utility, ldc: ldc}
}

func TestStores_CommitAcrossAggregateTypes(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	stores := NewStores(db)
	uow := NewUnitOfWork(db, nil)
	repos := stores.Bind(uow)
	o := newOnboarding(t)

	require.NoError(t, uow.BeginTransaction(ctx))
	require.NoError(t, repos.Customers.Add(ctx, o.customer))
	require.NoError(t, repos.LdcAccounts.Add(ctx, o.ldc))
	require.NoError(t, repos.UtilityAccounts.Add(ctx, o.utility))

	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Zero(t, stores.Customers.Len())

	require.NoError(t, uow.Commit(ctx))
	assert.Equal(t, 1, stores.Customers.Len())
	assert.Equal(t, 1, stores.UtilityAccounts.Len())
	assert.Equal(t, 1, stores.LdcAccounts.Len())

	linked, err := repos.UtilityAccounts.GetBySpecification(ctx, account.UtilityAccountsByLdcAccount(o.ldc.ID))
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, o.utility.ID, linked[0].ID)

	unlinked, err := repos.Customers.GetBySpecification(ctx, customer.NotLinkedToCrm())
	require.NoError(t, err)
	assert.Len(t, unlinked, 1)
}

func TestStores_FailedCommitAppliesNothing(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	stores := NewStores(db)
	o := newOnboarding(t)

	setup := NewUnitOfWork(db, nil)
	require.NoError(t, stores.Bind(setup).LdcAccounts.Add(ctx, o.ldc))

	uowA := NewUnitOfWork(db, nil)
	reposA := stores.Bind(uowA)
	uowB := NewUnitOfWork(db, nil)
	reposB := stores.Bind(uowB)
	require.NoError(t, uowA.BeginTransaction(ctx))
	require.NoError(t, uowB.BeginTransaction(ctx))

	ldcA, err := reposA.LdcAccounts.GetByID(ctx, o.ldc.ID)
	require.NoError(t, err)
	require.True(t, ldcA.MarkSynced("crm-acct-1", time.Now()).IsSuccess())
	require.NoError(t, reposA.LdcAccounts.Update(ctx, ldcA))
	require.NoError(t, reposA.Customers.Add(ctx, o.customer))

	ldcB, err := reposB.LdcAccounts.GetByID(ctx, o.ldc.ID)
	require.NoError(t, err)
	require.True(t, ldcB.Deactivate().IsSuccess())
	require.NoError(t, reposB.LdcAccounts.Update(ctx, ldcB))
	require.NoError(t, uowB.Commit(ctx))

	assert.ErrorIs(t, uowA.Commit(ctx), shared.ErrConcurrencyConflict)
	assert.Zero(t, stores.Customers.Len(), "customer insert must not be applied when the ldc update conflicts")
	require.NoError(t, uowA.Rollback(ctx))

	stored, err := stores.Bind(NewUnitOfWork(db, nil)).LdcAccounts.GetByID(ctx, o.ldc.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive())
}

func TestSyncJobSessionFactory(t *testing.T) {
	ctx := context.Background()
	db := NewDatabase()
	stores := NewStores(db)
	factory := NewSyncJobSessionFactory(db, stores.Jobs, nil)

	first := factory.NewSession()
	second := factory.NewSession()
	assert.NotSame(t, first.UnitOfWork(), second.UnitOfWork())

	job := newJob(t)
	require.NoError(t, first.UnitOfWork().BeginTransaction(ctx))
	require.NoError(t, first.Jobs().Add(ctx, job))

	_, err := second.Jobs().GetByID(ctx, job.ID)
	assert.True(t, shared.IsNotFound(err))

	require.NoError(t, first.UnitOfWork().Commit(ctx))

	loaded, err := second.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, syncjob.SyncJobStatusPending, loaded.Status())

	_, err = second.Jobs().GetByID(ctx, uuid.New())
	assert.True(t, shared.IsNotFound(err))
}
