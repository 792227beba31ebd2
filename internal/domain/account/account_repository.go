package account

import (
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// UtilityAccountRepository defines the persistence contract for utility accounts
type UtilityAccountRepository interface {
	shared.Repository[*UtilityAccount]
}

// LdcAccountRepository defines the persistence contract for LDC accounts
type LdcAccountRepository interface {
	shared.Repository[*LdcAccount]
}

// UtilityAccountsByCustomer selects the customer's utility accounts
func UtilityAccountsByCustomer(customerID uuid.UUID) shared.Specification[*UtilityAccount] {
	return shared.SpecificationFunc[*UtilityAccount](func(a *UtilityAccount) bool {
		return a.customerID == customerID
	})
}

// UtilityAccountsByLdcAccount selects utility accounts the LDC account is linked to
func UtilityAccountsByLdcAccount(ldcAccountID uuid.UUID) shared.Specification[*UtilityAccount] {
	return shared.SpecificationFunc[*UtilityAccount](func(a *UtilityAccount) bool {
		return a.HasLdcAccount(ldcAccountID)
	})
}

// LdcAccountsByTenant selects LDC accounts owned by the tenant
func LdcAccountsByTenant(tenantID valueobject.TenantID) shared.Specification[*LdcAccount] {
	return shared.SpecificationFunc[*LdcAccount](func(a *LdcAccount) bool {
		return a.tenantID.Equals(tenantID)
	})
}

// LdcAccountsByCode selects LDC accounts held with the distribution company
func LdcAccountsByCode(ldcCode string) shared.Specification[*LdcAccount] {
	return shared.SpecificationFunc[*LdcAccount](func(a *LdcAccount) bool {
		return a.ldcCode == ldcCode
	})
}

// LdcAccountsNeedingSync selects active LDC accounts that are due for synchronization
func LdcAccountsNeedingSync(maxAge time.Duration, now time.Time) shared.Specification[*LdcAccount] {
	return shared.SpecificationFunc[*LdcAccount](func(a *LdcAccount) bool {
		return a.NeedsSync(maxAge, now)
	})
}
