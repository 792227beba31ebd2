package event

import "errors"

// ErrHandlerPanic wraps a recovered handler panic
var ErrHandlerPanic = errors.New("event handler panicked")

// ErrUnknownEventType is returned when deserializing an unregistered event type
var ErrUnknownEventType = errors.New("unknown event type")
