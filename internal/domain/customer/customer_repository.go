package customer

import (
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
)

// CustomerRepository defines the persistence contract for customers
type CustomerRepository interface {
	shared.Repository[*Customer]
}

// ByTenant selects customers owned by the tenant
func ByTenant(tenantID valueobject.TenantID) shared.Specification[*Customer] {
	return shared.SpecificationFunc[*Customer](func(c *Customer) bool {
		return c.tenantID.Equals(tenantID)
	})
}

// ByEmail selects customers with the email address
func ByEmail(email valueobject.EmailAddress) shared.Specification[*Customer] {
	return shared.SpecificationFunc[*Customer](func(c *Customer) bool {
		return c.email.Equals(email)
	})
}

// ByCrmContact selects the customer linked to the CRM contact
func ByCrmContact(crmContactID string) shared.Specification[*Customer] {
	crmContactID = strings.TrimSpace(crmContactID)
	return shared.SpecificationFunc[*Customer](func(c *Customer) bool {
		return crmContactID != "" && c.crmContactID == crmContactID
	})
}

// NotLinkedToCrm selects active customers that still need a CRM contact
func NotLinkedToCrm() shared.Specification[*Customer] {
	return shared.SpecificationFunc[*Customer](func(c *Customer) bool {
		return c.IsActive() && !c.IsLinkedToCrm()
	})
}
