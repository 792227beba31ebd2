package account

import (
	"strings"
	"testing"

	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTenant = valueobject.MustNewTenantID("clean-power-sf")

func testAddress() valueobject.Address {
	return valueobject.NewAddress("525 Golden Gate Ave", "San Francisco", "CA", "94102").Value()
}

func newTestUtilityAccount(t *testing.T) *UtilityAccount {
	t.Helper()
	result := NewUtilityAccount(
		testTenant,
		uuid.New(),
		valueobject.NewAccountNumber("0123456789").Value(),
		"Pacific Gas and Electric",
		testAddress(),
	)
	require.True(t, result.IsSuccess())
	return result.Value()
}

func TestNewUtilityAccount(t *testing.T) {
	customerID := uuid.New()
	number := valueobject.NewAccountNumber("0123456789").Value()

	tests := []struct {
		name        string
		customerID  uuid.UUID
		number      valueobject.AccountNumber
		utilityName string
		address     valueobject.Address
		wantCode    string
	}{
		{"valid", customerID, number, "PG&E", testAddress(), ""},
		{"empty customer", uuid.Nil, number, "PG&E", testAddress(), "UtilityAccount.EmptyCustomerId"},
		{"empty account number", customerID, valueobject.AccountNumber{}, "PG&E", testAddress(), "UtilityAccount.EmptyAccountNumber"},
		{"empty utility name", customerID, number, "  ", testAddress(), "UtilityAccount.EmptyUtilityName"},
		{"utility name too long", customerID, number, strings.Repeat("u", MaxUtilityNameLength+1), testAddress(),
			"UtilityAccount.UtilityNameTooLong"},
		{"empty address", customerID, number, "PG&E", valueobject.Address{}, "UtilityAccount.EmptyServiceAddress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewUtilityAccount(testTenant, tt.customerID, tt.number, tt.utilityName, tt.address)
			if tt.wantCode != "" {
				require.True(t, result.IsFailure())
				assert.Equal(t, tt.wantCode, result.Error().Code)
				return
			}
			require.True(t, result.IsSuccess())
			a := result.Value()
			assert.Equal(t, tt.customerID, a.CustomerID())
			assert.Equal(t, UtilityAccountStatusActive, a.Status())
			assert.Empty(t, a.LdcAccountIDs())

			events := a.DomainEvents()
			require.Len(t, events, 1)
			created := events[0].(*UtilityAccountCreatedEvent)
			assert.Equal(t, "0123456789", created.AccountNumber)
			assert.Equal(t, "PG&E", created.UtilityName)
		})
	}

	t.Run("zero tenant panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewUtilityAccount(valueobject.TenantID{}, customerID, number, "PG&E", testAddress())
		})
	})
}

func TestUtilityAccount_LinkLdcAccount(t *testing.T) {
	a := newTestUtilityAccount(t)
	first := uuid.New()
	second := uuid.New()

	require.True(t, a.LinkLdcAccount(first).IsSuccess())
	require.True(t, a.LinkLdcAccount(second).IsSuccess())
	assert.Equal(t, []uuid.UUID{first, second}, a.LdcAccountIDs())
	assert.True(t, a.HasLdcAccount(first))

	assert.Equal(t, ErrUtilityLdcAlreadyLinked, a.LinkLdcAccount(first).Error())
	assert.Equal(t, ErrUtilityEmptyLdcAccountID, a.LinkLdcAccount(uuid.Nil).Error())

	linked := a.DomainEvents()[2].(*UtilityAccountLdcLinkedEvent)
	assert.Equal(t, second, linked.LdcAccountID)

	view := a.LdcAccountIDs()
	view[0] = uuid.Nil
	assert.Equal(t, first, a.LdcAccountIDs()[0])
}

func TestUtilityAccount_Close(t *testing.T) {
	a := newTestUtilityAccount(t)

	assert.Equal(t, ErrUtilityEmptyReason, a.Close(" ").Error())
	assert.False(t, a.IsClosed())

	require.True(t, a.Close("moved out of territory").IsSuccess())
	assert.True(t, a.IsClosed())
	assert.Equal(t, "moved out of territory", a.CloseReason())
	assert.NotNil(t, a.ClosedAt())

	assert.Equal(t, ErrUtilityAlreadyClosed, a.Close("again").Error())
	assert.Equal(t, ErrUtilityClosed, a.LinkLdcAccount(uuid.New()).Error())

	events := a.DomainEvents()
	closed := events[len(events)-1].(*UtilityAccountClosedEvent)
	assert.Equal(t, "moved out of territory", closed.Reason)
}

func TestUtilityAccount_CloneAndSpecifications(t *testing.T) {
	a := newTestUtilityAccount(t)
	ldcID := uuid.New()
	require.True(t, a.LinkLdcAccount(ldcID).IsSuccess())

	clone := a.Clone()
	assert.Empty(t, clone.DomainEvents())
	require.True(t, clone.LinkLdcAccount(uuid.New()).IsSuccess())
	assert.Len(t, a.LdcAccountIDs(), 1)

	assert.True(t, UtilityAccountsByCustomer(a.CustomerID()).IsSatisfiedBy(a))
	assert.False(t, UtilityAccountsByCustomer(uuid.New()).IsSatisfiedBy(a))
	assert.True(t, UtilityAccountsByLdcAccount(ldcID).IsSatisfiedBy(a))
	assert.False(t, UtilityAccountsByLdcAccount(uuid.New()).IsSatisfiedBy(a))
}
