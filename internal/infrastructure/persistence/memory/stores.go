package memory

import (
	"github.com/ccasync/backend/internal/domain/account"
	"github.com/ccasync/backend/internal/domain/customer"
	"github.com/ccasync/backend/internal/domain/syncjob"
)

// Stores holds the store of every aggregate type of the domain
type Stores struct {
	Jobs            *Store[*syncjob.SyncJob]
	Customers       *Store[*customer.Customer]
	UtilityAccounts *Store[*account.UtilityAccount]
	LdcAccounts     *Store[*account.LdcAccount]
}

// NewStores registers a store for every aggregate type on db
func NewStores(db *Database) *Stores {
	return &Stores{
		Jobs:            NewStore(db, syncjob.AggregateTypeSyncJob, (*syncjob.SyncJob).Clone),
		Customers:       NewStore(db, customer.AggregateTypeCustomer, (*customer.Customer).Clone),
		UtilityAccounts: NewStore(db, account.AggregateTypeUtilityAccount, (*account.UtilityAccount).Clone),
		LdcAccounts:     NewStore(db, account.AggregateTypeLdcAccount, (*account.LdcAccount).Clone),
	}
}

// Repositories groups repositories for every aggregate type bound to one unit of work
type Repositories struct {
	Jobs            syncjob.SyncJobRepository
	Customers       customer.CustomerRepository
	UtilityAccounts account.UtilityAccountRepository
	LdcAccounts     account.LdcAccountRepository
}

// Bind returns repositories for every store whose writes join uow
func (s *Stores) Bind(uow *UnitOfWork) Repositories {
	return Repositories{
		Jobs:            NewSyncJobRepository(s.Jobs, uow),
		Customers:       NewRepository(s.Customers, uow),
		UtilityAccounts: NewRepository(s.UtilityAccounts, uow),
		LdcAccounts:     NewRepository(s.LdcAccounts, uow),
	}
}
