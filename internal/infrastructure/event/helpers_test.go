package event

import (
	"context"
	"sync"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type testEvent struct {
	shared.BaseDomainEvent
	Sequence int `json:"sequence"`
}

func newTestEvent(eventType string, seq int) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New(), "clean-power-sf"),
		Sequence:        seq,
	}
}

// recordingHandler appends "<name>:<event type>" to a shared log
type recordingHandler struct {
	name  string
	types []string
	log   *callLog
	err   error
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.log.add(h.name + ":" + event.EventType())
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

type callLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *callLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}
