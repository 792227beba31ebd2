package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error represents an expected domain failure.
// Codes are namespaced by the aggregate or value type that produced them
// (e.g. "SyncJob.InvalidStateTransition") so callers can branch on Code.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrNone is the canonical empty error carried by successful results
var ErrNone = Error{}

// NewError creates a new domain error
func NewError(code, description string) Error {
	return Error{
		Code:        code,
		Description: description,
	}
}

// Error implements the error interface
func (e Error) Error() string {
	if e.IsNone() {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNone returns true if this is the empty error
func (e Error) IsNone() bool {
	return e.Code == "" && e.Description == ""
}

// Is reports whether target carries the same code, so errors.Is works on wrapped domain errors
func (e Error) Is(target error) bool {
	var other Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// AsError extracts a domain Error from an error chain
func AsError(err error) (Error, bool) {
	var domainErr Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return ErrNone, false
}

// Common domain errors
var (
	ErrNullValue           = NewError("General.Null", "Null value was provided")
	ErrConcurrencyConflict = NewError("General.ConcurrencyConflict", "Resource was modified by another process")
	ErrNoTransaction       = NewError("General.NoTransaction", "No transaction is active")
	ErrTransactionActive   = NewError("General.TransactionActive", "A transaction is already active")
)

// ErrNotFound returns the error used when an aggregate cannot be located by identifier
func ErrNotFound(aggregateType string, id uuid.UUID) Error {
	return NewError(aggregateType+".NotFound", fmt.Sprintf("%s with id %s was not found", aggregateType, id))
}

// IsNotFound reports whether err carries a "<Aggregate>.NotFound" code
func IsNotFound(err error) bool {
	domainErr, ok := AsError(err)
	if !ok {
		return false
	}
	return strings.HasSuffix(domainErr.Code, ".NotFound")
}
