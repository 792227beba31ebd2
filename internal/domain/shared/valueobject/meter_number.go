package valueobject

import (
	"regexp"
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
)

var meterNumberPattern = regexp.MustCompile(`^[A-Z0-9-]{1,30}$`)

// Meter number errors
var (
	ErrMeterNumberEmpty         = shared.NewError("MeterNumber.Empty", "Meter number cannot be empty")
	ErrMeterNumberInvalidFormat = shared.NewError("MeterNumber.InvalidFormat",
		"Meter number must be at most 30 letters, digits or hyphens")
)

// MeterNumber identifies a physical meter at a service point
type MeterNumber struct {
	value string
}

// NewMeterNumber creates a MeterNumber; input is trimmed and upper-cased
func NewMeterNumber(value string) shared.ResultOf[MeterNumber] {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return shared.FailureOf[MeterNumber](ErrMeterNumberEmpty)
	}
	if !meterNumberPattern.MatchString(value) {
		return shared.FailureOf[MeterNumber](ErrMeterNumberInvalidFormat)
	}
	return shared.SuccessOf(MeterNumber{value: value})
}

// Value returns the meter number
func (m MeterNumber) Value() string {
	return m.value
}

// IsZero returns true for the zero MeterNumber
func (m MeterNumber) IsZero() bool {
	return m.value == ""
}

// String returns the meter number
func (m MeterNumber) String() string {
	return m.value
}

// Equals returns true if both meter numbers are equal
func (m MeterNumber) Equals(other MeterNumber) bool {
	return m.value == other.value
}

// EqualityComponents implements shared.ValueObject
func (m MeterNumber) EqualityComponents() []any {
	return []any{m.value}
}
