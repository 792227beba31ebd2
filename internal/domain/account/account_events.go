package account

import (
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeUtilityAccount = "UtilityAccount"
	AggregateTypeLdcAccount     = "LdcAccount"
)

// Event type constants
const (
	EventTypeUtilityAccountCreated   = "UtilityAccountCreated"
	EventTypeUtilityAccountLdcLinked = "UtilityAccountLdcLinked"
	EventTypeUtilityAccountClosed    = "UtilityAccountClosed"
	EventTypeLdcAccountCreated       = "LdcAccountCreated"
	EventTypeLdcAccountMeterReplaced = "LdcAccountMeterReplaced"
	EventTypeLdcAccountSynced        = "LdcAccountSynced"
)

// UtilityAccountCreatedEvent is published when a utility account is opened
type UtilityAccountCreatedEvent struct {
	shared.BaseDomainEvent
	UtilityAccountID uuid.UUID `json:"utility_account_id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	AccountNumber    string    `json:"account_number"`
	UtilityName      string    `json:"utility_name"`
}

// NewUtilityAccountCreatedEvent creates a new UtilityAccountCreatedEvent
func NewUtilityAccountCreatedEvent(a *UtilityAccount) *UtilityAccountCreatedEvent {
	return &UtilityAccountCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeUtilityAccountCreated, AggregateTypeUtilityAccount, a.ID, a.tenantID.Value()),
		UtilityAccountID: a.ID,
		CustomerID:       a.customerID,
		AccountNumber:    a.accountNumber.Value(),
		UtilityName:      a.utilityName,
	}
}

// UtilityAccountLdcLinkedEvent is published when an LDC account is linked
type UtilityAccountLdcLinkedEvent struct {
	shared.BaseDomainEvent
	UtilityAccountID uuid.UUID `json:"utility_account_id"`
	LdcAccountID     uuid.UUID `json:"ldc_account_id"`
}

// NewUtilityAccountLdcLinkedEvent creates a new UtilityAccountLdcLinkedEvent
func NewUtilityAccountLdcLinkedEvent(a *UtilityAccount, ldcAccountID uuid.UUID) *UtilityAccountLdcLinkedEvent {
	return &UtilityAccountLdcLinkedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeUtilityAccountLdcLinked, AggregateTypeUtilityAccount, a.ID, a.tenantID.Value()),
		UtilityAccountID: a.ID,
		LdcAccountID:     ldcAccountID,
	}
}

// UtilityAccountClosedEvent is published when a utility account is closed
type UtilityAccountClosedEvent struct {
	shared.BaseDomainEvent
	UtilityAccountID uuid.UUID `json:"utility_account_id"`
	Reason           string    `json:"reason"`
	ClosedAt         time.Time `json:"closed_at"`
}

// NewUtilityAccountClosedEvent creates a new UtilityAccountClosedEvent
func NewUtilityAccountClosedEvent(a *UtilityAccount) *UtilityAccountClosedEvent {
	return &UtilityAccountClosedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeUtilityAccountClosed, AggregateTypeUtilityAccount, a.ID, a.tenantID.Value()),
		UtilityAccountID: a.ID,
		Reason:           a.closeReason,
		ClosedAt:         *a.closedAt,
	}
}

// LdcAccountCreatedEvent is published when an LDC account is registered
type LdcAccountCreatedEvent struct {
	shared.BaseDomainEvent
	LdcAccountID  uuid.UUID `json:"ldc_account_id"`
	LdcCode       string    `json:"ldc_code"`
	AccountNumber string    `json:"account_number"`
	MeterNumber   string    `json:"meter_number"`
}

// NewLdcAccountCreatedEvent creates a new LdcAccountCreatedEvent
func NewLdcAccountCreatedEvent(a *LdcAccount) *LdcAccountCreatedEvent {
	return &LdcAccountCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLdcAccountCreated, AggregateTypeLdcAccount, a.ID, a.tenantID.Value()),
		LdcAccountID:    a.ID,
		LdcCode:         a.ldcCode,
		AccountNumber:   a.accountNumber.Value(),
		MeterNumber:     a.meterNumber.Value(),
	}
}

// LdcAccountMeterReplacedEvent is published when the meter on an LDC account changes
type LdcAccountMeterReplacedEvent struct {
	shared.BaseDomainEvent
	LdcAccountID   uuid.UUID `json:"ldc_account_id"`
	OldMeterNumber string    `json:"old_meter_number"`
	NewMeterNumber string    `json:"new_meter_number"`
}

// NewLdcAccountMeterReplacedEvent creates a new LdcAccountMeterReplacedEvent
func NewLdcAccountMeterReplacedEvent(a *LdcAccount, previous valueobject.MeterNumber) *LdcAccountMeterReplacedEvent {
	return &LdcAccountMeterReplacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLdcAccountMeterReplaced, AggregateTypeLdcAccount, a.ID, a.tenantID.Value()),
		LdcAccountID:    a.ID,
		OldMeterNumber:  previous.Value(),
		NewMeterNumber:  a.meterNumber.Value(),
	}
}

// LdcAccountSyncedEvent is published when an LDC account is synchronized to the CRM
type LdcAccountSyncedEvent struct {
	shared.BaseDomainEvent
	LdcAccountID uuid.UUID `json:"ldc_account_id"`
	CrmAccountID string    `json:"crm_account_id"`
	SyncedAt     time.Time `json:"synced_at"`
}

// NewLdcAccountSyncedEvent creates a new LdcAccountSyncedEvent
func NewLdcAccountSyncedEvent(a *LdcAccount) *LdcAccountSyncedEvent {
	return &LdcAccountSyncedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLdcAccountSynced, AggregateTypeLdcAccount, a.ID, a.tenantID.Value()),
		LdcAccountID:    a.ID,
		CrmAccountID:    a.crmAccountID,
		SyncedAt:        *a.lastSyncedAt,
	}
}
