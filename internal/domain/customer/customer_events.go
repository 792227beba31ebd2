package customer

import (
	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerCreated        = "CustomerCreated"
	EventTypeCustomerContactUpdated = "CustomerContactUpdated"
	EventTypeCustomerLinkedToCrm    = "CustomerLinkedToCrm"
	EventTypeCustomerStatusChanged  = "CustomerStatusChanged"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: newCustomerEvent(EventTypeCustomerCreated, c),
		CustomerID:      c.ID,
		FullName:        c.name.FullName(),
		Email:           c.email.Value(),
	}
}

// CustomerContactUpdatedEvent is published when email, phone, or mailing address change
type CustomerContactUpdatedEvent struct {
	shared.BaseDomainEvent
	CustomerID     uuid.UUID `json:"customer_id"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	MailingAddress string    `json:"mailing_address,omitempty"`
}

// NewCustomerContactUpdatedEvent creates a new CustomerContactUpdatedEvent
func NewCustomerContactUpdatedEvent(c *Customer) *CustomerContactUpdatedEvent {
	e := &CustomerContactUpdatedEvent{
		BaseDomainEvent: newCustomerEvent(EventTypeCustomerContactUpdated, c),
		CustomerID:      c.ID,
		Email:           c.email.Value(),
	}
	if c.phone != nil {
		e.Phone = c.phone.E164()
	}
	if c.mailingAddress != nil {
		e.MailingAddress = c.mailingAddress.SingleLine()
	}
	return e
}

// CustomerLinkedToCrmEvent is published when a customer is linked to a CRM contact
type CustomerLinkedToCrmEvent struct {
	shared.BaseDomainEvent
	CustomerID           uuid.UUID `json:"customer_id"`
	CrmContactID         string    `json:"crm_contact_id"`
	PreviousCrmContactID string    `json:"previous_crm_contact_id,omitempty"`
}

// NewCustomerLinkedToCrmEvent creates a new CustomerLinkedToCrmEvent
func NewCustomerLinkedToCrmEvent(c *Customer, previous string) *CustomerLinkedToCrmEvent {
	return &CustomerLinkedToCrmEvent{
		BaseDomainEvent:      newCustomerEvent(EventTypeCustomerLinkedToCrm, c),
		CustomerID:           c.ID,
		CrmContactID:         c.crmContactID,
		PreviousCrmContactID: previous,
	}
}

// CustomerStatusChangedEvent is published when a customer's status changes
type CustomerStatusChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID      `json:"customer_id"`
	OldStatus  CustomerStatus `json:"old_status"`
	NewStatus  CustomerStatus `json:"new_status"`
}

// NewCustomerStatusChangedEvent creates a new CustomerStatusChangedEvent
func NewCustomerStatusChangedEvent(c *Customer, oldStatus, newStatus CustomerStatus) *CustomerStatusChangedEvent {
	return &CustomerStatusChangedEvent{
		BaseDomainEvent: newCustomerEvent(EventTypeCustomerStatusChanged, c),
		CustomerID:      c.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

func newCustomerEvent(eventType string, c *Customer) shared.BaseDomainEvent {
	return shared.NewBaseDomainEvent(eventType, AggregateTypeCustomer, c.ID, c.tenantID.Value())
}
