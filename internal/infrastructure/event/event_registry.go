package event

import (
	"github.com/ccasync/backend/internal/domain/account"
	"github.com/ccasync/backend/internal/domain/customer"
	"github.com/ccasync/backend/internal/domain/syncjob"
)

// RegisterAllEvents registers every domain event type with the serializer
func RegisterAllEvents(serializer *EventSerializer) {
	// Sync job events
	serializer.Register(syncjob.EventTypeSyncJobCreated, &syncjob.SyncJobCreatedEvent{})
	serializer.Register(syncjob.EventTypeSyncJobStarted, &syncjob.SyncJobStartedEvent{})
	serializer.Register(syncjob.EventTypeSyncJobProgressUpdated, &syncjob.SyncJobProgressUpdatedEvent{})
	serializer.Register(syncjob.EventTypeSyncJobCompleted, &syncjob.SyncJobCompletedEvent{})
	serializer.Register(syncjob.EventTypeSyncJobFailed, &syncjob.SyncJobFailedEvent{})
	serializer.Register(syncjob.EventTypeSyncJobCancelled, &syncjob.SyncJobCancelledEvent{})

	// Customer events
	serializer.Register(customer.EventTypeCustomerCreated, &customer.CustomerCreatedEvent{})
	serializer.Register(customer.EventTypeCustomerContactUpdated, &customer.CustomerContactUpdatedEvent{})
	serializer.Register(customer.EventTypeCustomerLinkedToCrm, &customer.CustomerLinkedToCrmEvent{})
	serializer.Register(customer.EventTypeCustomerStatusChanged, &customer.CustomerStatusChangedEvent{})

	// Account events
	serializer.Register(account.EventTypeUtilityAccountCreated, &account.UtilityAccountCreatedEvent{})
	serializer.Register(account.EventTypeUtilityAccountLdcLinked, &account.UtilityAccountLdcLinkedEvent{})
	serializer.Register(account.EventTypeUtilityAccountClosed, &account.UtilityAccountClosedEvent{})
	serializer.Register(account.EventTypeLdcAccountCreated, &account.LdcAccountCreatedEvent{})
	serializer.Register(account.EventTypeLdcAccountMeterReplaced, &account.LdcAccountMeterReplacedEvent{})
	serializer.Register(account.EventTypeLdcAccountSynced, &account.LdcAccountSyncedEvent{})
}
