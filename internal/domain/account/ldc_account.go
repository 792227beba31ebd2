package account

import (
	"regexp"
	"strings"
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
)

var ldcCodePattern = regexp.MustCompile(`^[A-Z0-9_]{2,20}$`)

// LdcAccountStatus represents the status of an LDC account
type LdcAccountStatus string

const (
	LdcAccountStatusActive   LdcAccountStatus = "active"
	LdcAccountStatusInactive LdcAccountStatus = "inactive"
)

// LdcAccount errors
var (
	ErrLdcInvalidCode        = shared.NewError("LdcAccount.InvalidLdcCode", "LDC code must be 2-20 characters of A-Z, 0-9 or underscore")
	ErrLdcEmptyAccountNumber = shared.NewError("LdcAccount.EmptyAccountNumber", "Account number cannot be empty")
	ErrLdcEmptyMeterNumber   = shared.NewError("LdcAccount.EmptyMeterNumber", "Meter number cannot be empty")
	ErrLdcInactive           = shared.NewError("LdcAccount.Inactive", "LDC account is inactive")
	ErrLdcSameMeter          = shared.NewError("LdcAccount.SameMeter", "New meter is the same as the current meter")
	ErrLdcEmptyCrmAccountID  = shared.NewError("LdcAccount.EmptyCrmAccountId", "CRM account id cannot be empty")
	ErrLdcAlreadyInactive    = shared.NewError("LdcAccount.AlreadyInactive", "LDC account is already inactive")
	ErrLdcAlreadyActive      = shared.NewError("LdcAccount.AlreadyActive", "LDC account is already active")
)

// LdcAccount is a metered service account held with a local distribution company
type LdcAccount struct {
	shared.BaseAggregateRoot
	tenantID       valueobject.TenantID
	ldcCode        string
	accountNumber  valueobject.AccountNumber
	meterNumber    valueobject.MeterNumber
	serviceAddress *valueobject.Address
	status         LdcAccountStatus
	crmAccountID   string
	lastSyncedAt   *time.Time
}

// LdcAccountOption configures optional LdcAccount fields
type LdcAccountOption func(*LdcAccount)

// WithServiceAddress sets the service address
func WithServiceAddress(address valueobject.Address) LdcAccountOption {
	return func(a *LdcAccount) {
		if !address.IsEmpty() {
			a.serviceAddress = &address
		}
	}
}

// NewLdcAccount creates an active LDC account. The LDC code is trimmed and upper-cased.
// Panics on a zero tenant.
func NewLdcAccount(
	tenantID valueobject.TenantID,
	ldcCode string,
	accountNumber valueobject.AccountNumber,
	meterNumber valueobject.MeterNumber,
	opts ...LdcAccountOption,
) shared.ResultOf[*LdcAccount] {
	if tenantID.IsZero() {
		panic("account: NewLdcAccount requires a tenant id")
	}
	ldcCode = strings.ToUpper(strings.TrimSpace(ldcCode))
	if !ldcCodePattern.MatchString(ldcCode) {
		return shared.FailureOf[*LdcAccount](ErrLdcInvalidCode)
	}
	if accountNumber.IsZero() {
		return shared.FailureOf[*LdcAccount](ErrLdcEmptyAccountNumber)
	}
	if meterNumber.IsZero() {
		return shared.FailureOf[*LdcAccount](ErrLdcEmptyMeterNumber)
	}

	a := &LdcAccount{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		tenantID:          tenantID,
		ldcCode:           ldcCode,
		accountNumber:     accountNumber,
		meterNumber:       meterNumber,
		status:            LdcAccountStatusActive,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.RaiseDomainEvent(NewLdcAccountCreatedEvent(a))

	return shared.SuccessOf(a)
}

// ReplaceMeter swaps the meter on an active account
func (a *LdcAccount) ReplaceMeter(meter valueobject.MeterNumber) shared.Result {
	if a.status != LdcAccountStatusActive {
		return shared.Failure(ErrLdcInactive)
	}
	if meter.IsZero() {
		return shared.Failure(ErrLdcEmptyMeterNumber)
	}
	if meter.Equals(a.meterNumber) {
		return shared.Failure(ErrLdcSameMeter)
	}

	previous := a.meterNumber
	a.meterNumber = meter
	a.Touch()
	a.RaiseDomainEvent(NewLdcAccountMeterReplacedEvent(a, previous))

	return shared.Success()
}

// MarkSynced records a successful synchronization to the CRM account
func (a *LdcAccount) MarkSynced(crmAccountID string, at time.Time) shared.Result {
	crmAccountID = strings.TrimSpace(crmAccountID)
	if crmAccountID == "" {
		return shared.Failure(ErrLdcEmptyCrmAccountID)
	}

	a.crmAccountID = crmAccountID
	a.lastSyncedAt = &at
	a.Touch()
	a.RaiseDomainEvent(NewLdcAccountSyncedEvent(a))

	return shared.Success()
}

// Deactivate marks the account inactive
func (a *LdcAccount) Deactivate() shared.Result {
	if a.status == LdcAccountStatusInactive {
		return shared.Failure(ErrLdcAlreadyInactive)
	}
	a.status = LdcAccountStatusInactive
	a.Touch()
	return shared.Success()
}

// Reactivate marks the account active again
func (a *LdcAccount) Reactivate() shared.Result {
	if a.status == LdcAccountStatusActive {
		return shared.Failure(ErrLdcAlreadyActive)
	}
	a.status = LdcAccountStatusActive
	a.Touch()
	return shared.Success()
}

// NeedsSync returns true for an active account that was never synced
// or was last synced more than maxAge before now
func (a *LdcAccount) NeedsSync(maxAge time.Duration, now time.Time) bool {
	if a.status != LdcAccountStatusActive {
		return false
	}
	if a.lastSyncedAt == nil {
		return true
	}
	return now.Sub(*a.lastSyncedAt) > maxAge
}

// TenantID returns the owning tenant
func (a *LdcAccount) TenantID() valueobject.TenantID { return a.tenantID }

// LdcCode returns the code of the distribution company
func (a *LdcAccount) LdcCode() string { return a.ldcCode }

// AccountNumber returns the LDC account number
func (a *LdcAccount) AccountNumber() valueobject.AccountNumber { return a.accountNumber }

// MeterNumber returns the current meter
func (a *LdcAccount) MeterNumber() valueobject.MeterNumber { return a.meterNumber }

// ServiceAddress returns the service address, if any
func (a *LdcAccount) ServiceAddress() (valueobject.Address, bool) {
	if a.serviceAddress == nil {
		return valueobject.Address{}, false
	}
	return *a.serviceAddress, true
}

// Status returns the account status
func (a *LdcAccount) Status() LdcAccountStatus { return a.status }

// IsActive returns true if the account is active
func (a *LdcAccount) IsActive() bool { return a.status == LdcAccountStatusActive }

// CrmAccountID returns the CRM account key, or "" if never synced
func (a *LdcAccount) CrmAccountID() string { return a.crmAccountID }

// LastSyncedAt returns when the account was last synced
func (a *LdcAccount) LastSyncedAt() *time.Time { return copyTime(a.lastSyncedAt) }

// Clone returns a deep copy of the account without its pending domain events
func (a *LdcAccount) Clone() *LdcAccount {
	c := *a
	c.ClearDomainEvents()
	if a.serviceAddress != nil {
		addr := *a.serviceAddress
		c.serviceAddress = &addr
	}
	c.lastSyncedAt = copyTime(a.lastSyncedAt)
	return &c
}
