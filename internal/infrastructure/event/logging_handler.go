package event

import (
	"context"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggingHandler writes one structured log line per domain event.
// It subscribes to all event types.
type LoggingHandler struct {
	logger     *zap.Logger
	serializer *EventSerializer
}

// NewLoggingHandler creates a LoggingHandler. When serializer is non-nil the
// event payload is included at debug level.
func NewLoggingHandler(log *zap.Logger, serializer *EventSerializer) *LoggingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingHandler{logger: log, serializer: serializer}
}

// Handle logs the event
func (h *LoggingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	log := logger.FromContextOr(ctx, h.logger)
	fields := []zap.Field{
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.String("tenant_id", event.TenantID()),
		zap.Time("occurred_at", event.OccurredAt()),
	}

	if h.serializer != nil && log.Core().Enabled(zap.DebugLevel) {
		if payload, err := h.serializer.Serialize(event); err == nil {
			fields = append(fields, zap.ByteString("payload", payload))
		}
	}

	log.Info("domain event", fields...)
	return nil
}

// EventTypes returns nil so the handler receives every event
func (h *LoggingHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LoggingHandler)(nil)
