package account

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// MaxUtilityNameLength is the longest accepted utility name
const MaxUtilityNameLength = 200

// UtilityAccountStatus represents the status of a utility account
type UtilityAccountStatus string

const (
	UtilityAccountStatusActive UtilityAccountStatus = "active"
	UtilityAccountStatusClosed UtilityAccountStatus = "closed"
)

// UtilityAccount errors
var (
	ErrUtilityEmptyCustomerID     = shared.NewError("UtilityAccount.EmptyCustomerId", "Customer id cannot be empty")
	ErrUtilityEmptyName           = shared.NewError("UtilityAccount.EmptyUtilityName", "Utility name cannot be empty")
	ErrUtilityNameTooLong         = shared.NewError("UtilityAccount.UtilityNameTooLong", "Utility name cannot exceed 200 characters")
	ErrUtilityEmptyLdcAccountID   = shared.NewError("UtilityAccount.EmptyLdcAccountId", "LDC account id cannot be empty")
	ErrUtilityLdcAlreadyLinked    = shared.NewError("UtilityAccount.LdcAccountAlreadyLinked", "LDC account is already linked")
	ErrUtilityClosed              = shared.NewError("UtilityAccount.Closed", "Utility account is closed")
	ErrUtilityAlreadyClosed       = shared.NewError("UtilityAccount.AlreadyClosed", "Utility account is already closed")
	ErrUtilityEmptyReason         = shared.NewError("UtilityAccount.EmptyReason", "Reason cannot be empty")
	ErrUtilityEmptyAccountNumber  = shared.NewError("UtilityAccount.EmptyAccountNumber", "Account number cannot be empty")
	ErrUtilityEmptyServiceAddress = shared.NewError("UtilityAccount.EmptyServiceAddress", "Service address cannot be empty")
)

// UtilityAccount is a customer's account with a utility, grouping the LDC
// accounts billed under it
type UtilityAccount struct {
	shared.BaseAggregateRoot
	tenantID       valueobject.TenantID
	customerID     uuid.UUID
	accountNumber  valueobject.AccountNumber
	utilityName    string
	serviceAddress valueobject.Address
	status         UtilityAccountStatus
	ldcAccountIDs  []uuid.UUID
	closedAt       *time.Time
	closeReason    string
}

// NewUtilityAccount creates an active utility account. Panics on a zero tenant.
func NewUtilityAccount(
	tenantID valueobject.TenantID,
	customerID uuid.UUID,
	accountNumber valueobject.AccountNumber,
	utilityName string,
	serviceAddress valueobject.Address,
) shared.ResultOf[*UtilityAccount] {
	if tenantID.IsZero() {
		panic("account: NewUtilityAccount requires a tenant id")
	}
	if customerID == uuid.Nil {
		return shared.FailureOf[*UtilityAccount](ErrUtilityEmptyCustomerID)
	}
	if accountNumber.IsZero() {
		return shared.FailureOf[*UtilityAccount](ErrUtilityEmptyAccountNumber)
	}
	utilityName = strings.TrimSpace(utilityName)
	if utilityName == "" {
		return shared.FailureOf[*UtilityAccount](ErrUtilityEmptyName)
	}
	if utf8.RuneCountInString(utilityName) > MaxUtilityNameLength {
		return shared.FailureOf[*UtilityAccount](ErrUtilityNameTooLong)
	}
	if serviceAddress.IsEmpty() {
		return shared.FailureOf[*UtilityAccount](ErrUtilityEmptyServiceAddress)
	}

	a := &UtilityAccount{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		tenantID:          tenantID,
		customerID:        customerID,
		accountNumber:     accountNumber,
		utilityName:       utilityName,
		serviceAddress:    serviceAddress,
		status:            UtilityAccountStatusActive,
		ldcAccountIDs:     make([]uuid.UUID, 0),
	}
	a.RaiseDomainEvent(NewUtilityAccountCreatedEvent(a))

	return shared.SuccessOf(a)
}

// LinkLdcAccount adds an LDC account to this utility account
func (a *UtilityAccount) LinkLdcAccount(ldcAccountID uuid.UUID) shared.Result {
	if a.status == UtilityAccountStatusClosed {
		return shared.Failure(ErrUtilityClosed)
	}
	if ldcAccountID == uuid.Nil {
		return shared.Failure(ErrUtilityEmptyLdcAccountID)
	}
	if a.HasLdcAccount(ldcAccountID) {
		return shared.Failure(ErrUtilityLdcAlreadyLinked)
	}

	a.ldcAccountIDs = append(a.ldcAccountIDs, ldcAccountID)
	a.Touch()
	a.RaiseDomainEvent(NewUtilityAccountLdcLinkedEvent(a, ldcAccountID))

	return shared.Success()
}

// Close closes the account
func (a *UtilityAccount) Close(reason string) shared.Result {
	if a.status == UtilityAccountStatusClosed {
		return shared.Failure(ErrUtilityAlreadyClosed)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.Failure(ErrUtilityEmptyReason)
	}

	now := time.Now()
	a.status = UtilityAccountStatusClosed
	a.closedAt = &now
	a.closeReason = reason
	a.UpdatedAt = now
	a.RaiseDomainEvent(NewUtilityAccountClosedEvent(a))

	return shared.Success()
}

// HasLdcAccount returns true if the LDC account is linked
func (a *UtilityAccount) HasLdcAccount(ldcAccountID uuid.UUID) bool {
	for _, id := range a.ldcAccountIDs {
		if id == ldcAccountID {
			return true
		}
	}
	return false
}

// TenantID returns the owning tenant
func (a *UtilityAccount) TenantID() valueobject.TenantID { return a.tenantID }

// CustomerID returns the owning customer
func (a *UtilityAccount) CustomerID() uuid.UUID { return a.customerID }

// AccountNumber returns the utility account number
func (a *UtilityAccount) AccountNumber() valueobject.AccountNumber { return a.accountNumber }

// UtilityName returns the utility name
func (a *UtilityAccount) UtilityName() string { return a.utilityName }

// ServiceAddress returns the service address
func (a *UtilityAccount) ServiceAddress() valueobject.Address { return a.serviceAddress }

// Status returns the account status
func (a *UtilityAccount) Status() UtilityAccountStatus { return a.status }

// IsClosed returns true if the account is closed
func (a *UtilityAccount) IsClosed() bool { return a.status == UtilityAccountStatusClosed }

// CloseReason returns why the account was closed
func (a *UtilityAccount) CloseReason() string { return a.closeReason }

// ClosedAt returns when the account was closed
func (a *UtilityAccount) ClosedAt() *time.Time { return copyTime(a.closedAt) }

// LdcAccountIDs returns the linked LDC accounts in link order
func (a *UtilityAccount) LdcAccountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(a.ldcAccountIDs))
	copy(ids, a.ldcAccountIDs)
	return ids
}

// Clone returns a deep copy of the account without its pending domain events
func (a *UtilityAccount) Clone() *UtilityAccount {
	c := *a
	c.ClearDomainEvents()
	c.ldcAccountIDs = a.LdcAccountIDs()
	c.closedAt = copyTime(a.closedAt)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
