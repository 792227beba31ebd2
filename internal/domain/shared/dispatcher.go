package shared

import "context"

// EventHandler handles domain events
type EventHandler interface {
	// Handle processes a domain event
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes returns the event types this handler is interested in
	// An empty slice means the handler receives all events
	EventTypes() []string
}

// EventHandlerFunc adapts a function to EventHandler for the given event types
type EventHandlerFunc struct {
	Types []string
	Fn    func(ctx context.Context, event DomainEvent) error
}

// Handle calls Fn
func (h *EventHandlerFunc) Handle(ctx context.Context, event DomainEvent) error {
	return h.Fn(ctx, event)
}

// EventTypes returns Types
func (h *EventHandlerFunc) EventTypes() []string {
	return h.Types
}

// DomainEventDispatcher delivers events drained from aggregates to their handlers.
// Events are delivered in the order given.
type DomainEventDispatcher interface {
	// Dispatch delivers a single event
	Dispatch(ctx context.Context, event DomainEvent) error
	// DispatchAll delivers events in order
	DispatchAll(ctx context.Context, events []DomainEvent) error
}

// EventSubscriber registers handlers with a dispatcher
type EventSubscriber interface {
	// Subscribe registers a handler for specific event types
	// If no event types are provided, the handler's own EventTypes are used
	Subscribe(handler EventHandler, eventTypes ...string)
	// Unsubscribe removes a handler from the subscription list
	Unsubscribe(handler EventHandler)
}
