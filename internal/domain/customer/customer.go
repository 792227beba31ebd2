package customer

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
)

// MaxCrmContactIDLength is the longest accepted CRM contact key
const MaxCrmContactIDLength = 100

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid checks if the status is valid
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer errors
var (
	ErrInactive            = shared.NewError("Customer.Inactive", "Customer is inactive")
	ErrEmptyCrmContactID   = shared.NewError("Customer.EmptyCrmContactId", "CRM contact id cannot be empty")
	ErrCrmContactIDTooLong = shared.NewError("Customer.CrmContactIdTooLong", "CRM contact id cannot exceed 100 characters")
	ErrAlreadyInactive     = shared.NewError("Customer.AlreadyInactive", "Customer is already inactive")
	ErrAlreadyActive       = shared.NewError("Customer.AlreadyActive", "Customer is already active")
)

// Customer is an end customer of a CCA, mirrored to a CRM contact
type Customer struct {
	shared.BaseAggregateRoot
	tenantID       valueobject.TenantID
	name           valueobject.CustomerName
	email          valueobject.EmailAddress
	phone          *valueobject.PhoneNumber
	mailingAddress *valueobject.Address
	crmContactID   string
	crmLinkedAt    *time.Time
	status         CustomerStatus
}

// NewCustomer creates an active customer. Panics on a zero tenant.
func NewCustomer(
	tenantID valueobject.TenantID,
	name valueobject.CustomerName,
	email valueobject.EmailAddress,
) shared.ResultOf[*Customer] {
	if tenantID.IsZero() {
		panic("customer: NewCustomer requires a tenant id")
	}
	if email.IsZero() {
		return shared.FailureOf[*Customer](valueobject.ErrEmailEmpty)
	}
	if name.FullName() == "" {
		return shared.FailureOf[*Customer](valueobject.ErrNameEmptyFirstName)
	}

	c := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		tenantID:          tenantID,
		name:              name,
		email:             email,
		status:            CustomerStatusActive,
	}
	c.RaiseDomainEvent(NewCustomerCreatedEvent(c))

	return shared.SuccessOf(c)
}

// UpdateContactInfo replaces the email and phone. A nil phone clears it.
func (c *Customer) UpdateContactInfo(email valueobject.EmailAddress, phone *valueobject.PhoneNumber) shared.Result {
	if c.status != CustomerStatusActive {
		return shared.Failure(ErrInactive)
	}
	if email.IsZero() {
		return shared.Failure(valueobject.ErrEmailEmpty)
	}

	c.email = email
	if phone != nil {
		p := *phone
		c.phone = &p
	} else {
		c.phone = nil
	}
	c.Touch()
	c.RaiseDomainEvent(NewCustomerContactUpdatedEvent(c))

	return shared.Success()
}

// UpdateMailingAddress replaces the mailing address
func (c *Customer) UpdateMailingAddress(address valueobject.Address) shared.Result {
	if c.status != CustomerStatusActive {
		return shared.Failure(ErrInactive)
	}
	if address.IsEmpty() {
		return shared.Failure(valueobject.ErrAddressEmptyStreet)
	}

	c.mailingAddress = &address
	c.Touch()
	c.RaiseDomainEvent(NewCustomerContactUpdatedEvent(c))

	return shared.Success()
}

// LinkCrmContact records the CRM contact this customer is synchronized to.
// Relinking to a different contact is allowed.
func (c *Customer) LinkCrmContact(crmContactID string) shared.Result {
	crmContactID = strings.TrimSpace(crmContactID)
	if crmContactID == "" {
		return shared.Failure(ErrEmptyCrmContactID)
	}
	if utf8.RuneCountInString(crmContactID) > MaxCrmContactIDLength {
		return shared.Failure(ErrCrmContactIDTooLong)
	}

	previous := c.crmContactID
	now := time.Now()
	c.crmContactID = crmContactID
	c.crmLinkedAt = &now
	c.UpdatedAt = now
	c.RaiseDomainEvent(NewCustomerLinkedToCrmEvent(c, previous))

	return shared.Success()
}

// Deactivate marks the customer inactive
func (c *Customer) Deactivate() shared.Result {
	if c.status == CustomerStatusInactive {
		return shared.Failure(ErrAlreadyInactive)
	}
	c.setStatus(CustomerStatusInactive)
	return shared.Success()
}

// Reactivate marks the customer active again
func (c *Customer) Reactivate() shared.Result {
	if c.status == CustomerStatusActive {
		return shared.Failure(ErrAlreadyActive)
	}
	c.setStatus(CustomerStatusActive)
	return shared.Success()
}

func (c *Customer) setStatus(status CustomerStatus) {
	old := c.status
	c.status = status
	c.Touch()
	c.RaiseDomainEvent(NewCustomerStatusChangedEvent(c, old, status))
}

// TenantID returns the owning tenant
func (c *Customer) TenantID() valueobject.TenantID { return c.tenantID }

// Name returns the customer name
func (c *Customer) Name() valueobject.CustomerName { return c.name }

// Email returns the email address
func (c *Customer) Email() valueobject.EmailAddress { return c.email }

// Phone returns the phone number, if any
func (c *Customer) Phone() (valueobject.PhoneNumber, bool) {
	if c.phone == nil {
		return valueobject.PhoneNumber{}, false
	}
	return *c.phone, true
}

// MailingAddress returns the mailing address, if any
func (c *Customer) MailingAddress() (valueobject.Address, bool) {
	if c.mailingAddress == nil {
		return valueobject.Address{}, false
	}
	return *c.mailingAddress, true
}

// CrmContactID returns the linked CRM contact id, or "" when not linked
func (c *Customer) CrmContactID() string { return c.crmContactID }

// IsLinkedToCrm returns true if the customer has a CRM contact
func (c *Customer) IsLinkedToCrm() bool { return c.crmContactID != "" }

// CrmLinkedAt returns when the CRM contact was last linked
func (c *Customer) CrmLinkedAt() *time.Time {
	if c.crmLinkedAt == nil {
		return nil
	}
	t := *c.crmLinkedAt
	return &t
}

// Status returns the customer status
func (c *Customer) Status() CustomerStatus { return c.status }

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool { return c.status == CustomerStatusActive }

// Clone returns a deep copy of the customer without its pending domain events
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.ClearDomainEvents()
	if c.phone != nil {
		p := *c.phone
		cp.phone = &p
	}
	if c.mailingAddress != nil {
		a := *c.mailingAddress
		cp.mailingAddress = &a
	}
	cp.crmLinkedAt = c.CrmLinkedAt()
	return &cp
}
