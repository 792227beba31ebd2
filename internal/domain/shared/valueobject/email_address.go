package valueobject

import (
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// MaxEmailLength is the longest address accepted (RFC 5321 path limit)
const MaxEmailLength = 254

var emailValidator = validator.New()

// Email address errors
var (
	ErrEmailEmpty         = shared.NewError("EmailAddress.Empty", "Email address cannot be empty")
	ErrEmailTooLong       = shared.NewError("EmailAddress.TooLong", "Email address cannot exceed 254 characters")
	ErrEmailInvalidFormat = shared.NewError("EmailAddress.InvalidFormat", "Email address format is invalid")
)

// EmailAddress is a validated, lower-cased email address
type EmailAddress struct {
	value string
}

// NewEmailAddress creates an EmailAddress
func NewEmailAddress(value string) shared.ResultOf[EmailAddress] {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return shared.FailureOf[EmailAddress](ErrEmailEmpty)
	}
	if len(value) > MaxEmailLength {
		return shared.FailureOf[EmailAddress](ErrEmailTooLong)
	}
	if err := emailValidator.Var(value, "email"); err != nil {
		return shared.FailureOf[EmailAddress](ErrEmailInvalidFormat)
	}
	return shared.SuccessOf(EmailAddress{value: value})
}

// Value returns the email address
func (e EmailAddress) Value() string {
	return e.value
}

// Domain returns the part after '@'
func (e EmailAddress) Domain() string {
	at := strings.LastIndexByte(e.value, '@')
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

// IsZero returns true for the zero EmailAddress
func (e EmailAddress) IsZero() bool {
	return e.value == ""
}

// String returns the email address
func (e EmailAddress) String() string {
	return e.value
}

// Equals returns true if both addresses are equal
func (e EmailAddress) Equals(other EmailAddress) bool {
	return e.value == other.value
}

// EqualityComponents implements shared.ValueObject
func (e EmailAddress) EqualityComponents() []any {
	return []any{e.value}
}
