package event

import (
	"context"
	"fmt"
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DispatcherConfig controls how the in-memory dispatcher delivers events
type DispatcherConfig struct {
	// HandlerTimeout bounds each handler invocation. Zero disables the timeout.
	HandlerTimeout time.Duration
	// FailFast stops dispatch at the first handler error and returns it.
	// Otherwise handler errors are logged and delivery continues.
	FailFast bool
}

// InMemoryDispatcher delivers domain events synchronously to registered handlers,
// in the order the events are given and, per event, in registration order
type InMemoryDispatcher struct {
	registry *HandlerRegistry
	config   DispatcherConfig
	logger   *zap.Logger
}

// NewInMemoryDispatcher creates a new in-memory dispatcher
func NewInMemoryDispatcher(config DispatcherConfig, logger *zap.Logger) *InMemoryDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryDispatcher{
		registry: NewHandlerRegistry(),
		config:   config,
		logger:   logger,
	}
}

// Dispatch delivers a single event to its handlers
func (d *InMemoryDispatcher) Dispatch(ctx context.Context, event shared.DomainEvent) error {
	if event == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, handler := range d.registry.GetHandlers(event.EventType()) {
		if err := d.dispatchToHandler(ctx, handler, event); err != nil {
			d.logger.Error("handler failed to process event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.String("aggregate_id", event.AggregateID().String()),
				zap.String("tenant_id", event.TenantID()),
				zap.Error(err),
			)
			if d.config.FailFast {
				return fmt.Errorf("dispatching %s: %w", event.EventType(), err)
			}
		}
	}
	return nil
}

// DispatchAll delivers events in order
func (d *InMemoryDispatcher) DispatchAll(ctx context.Context, events []shared.DomainEvent) error {
	for _, event := range events {
		if err := d.Dispatch(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types.
// Without explicit types the handler's own EventTypes are used; none means all events.
func (d *InMemoryDispatcher) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	d.registry.Register(handler, eventTypes...)
	d.logger.Debug("handler subscribed",
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (d *InMemoryDispatcher) Unsubscribe(handler shared.EventHandler) {
	d.registry.Unregister(handler)
	d.logger.Debug("handler unsubscribed")
}

// HandlerCount returns the number of distinct registered handlers
func (d *InMemoryDispatcher) HandlerCount() int {
	return len(d.registry.GetAllHandlers())
}

// dispatchToHandler invokes one handler, bounding it by the configured timeout
// and turning a panic into an error
func (d *InMemoryDispatcher) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	if d.config.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.HandlerTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	if err = handler.Handle(ctx, event); err != nil {
		return err
	}
	return ctx.Err()
}

// Ensure InMemoryDispatcher implements the dispatcher contracts
var (
	_ shared.DomainEventDispatcher = (*InMemoryDispatcher)(nil)
	_ shared.EventSubscriber       = (*InMemoryDispatcher)(nil)
)
