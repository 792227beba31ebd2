package shared

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	RaiseDomainEvent(event DomainEvent)
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots.
// Domain events accumulate privately until ClearDomainEvents is called;
// callers only ever see a copy.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// RaiseDomainEvent appends a domain event to be dispatched. Panics on a nil event.
func (a *BaseAggregateRoot) RaiseDomainEvent(event DomainEvent) {
	if event == nil {
		panic("shared: RaiseDomainEvent requires a non-nil event")
	}
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns the pending domain events in the order they were raised
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.domainEvents))
	copy(events, a.domainEvents)
	return events
}

// HasDomainEvents returns true if any events are pending
func (a *BaseAggregateRoot) HasDomainEvents() bool {
	return len(a.domainEvents) > 0
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}
