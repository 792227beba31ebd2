package valueobject

import (
	"regexp"
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
)

var accountNumberPattern = regexp.MustCompile(`^[A-Z0-9-]{4,50}$`)

// Account number errors
var (
	ErrAccountNumberEmpty         = shared.NewError("AccountNumber.Empty", "Account number cannot be empty")
	ErrAccountNumberInvalidFormat = shared.NewError("AccountNumber.InvalidFormat",
		"Account number must be 4-50 letters, digits or hyphens")
)

// AccountNumber is a utility or LDC account number
type AccountNumber struct {
	value string
}

// NewAccountNumber creates an AccountNumber; input is trimmed and upper-cased
func NewAccountNumber(value string) shared.ResultOf[AccountNumber] {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return shared.FailureOf[AccountNumber](ErrAccountNumberEmpty)
	}
	if !accountNumberPattern.MatchString(value) {
		return shared.FailureOf[AccountNumber](ErrAccountNumberInvalidFormat)
	}
	return shared.SuccessOf(AccountNumber{value: value})
}

// Value returns the account number
func (n AccountNumber) Value() string {
	return n.value
}

// Masked returns the account number with all but the last four characters hidden
func (n AccountNumber) Masked() string {
	if len(n.value) <= 4 {
		return n.value
	}
	return strings.Repeat("*", len(n.value)-4) + n.value[len(n.value)-4:]
}

// IsZero returns true for the zero AccountNumber
func (n AccountNumber) IsZero() bool {
	return n.value == ""
}

// String returns the account number
func (n AccountNumber) String() string {
	return n.value
}

// Equals returns true if both account numbers are equal
func (n AccountNumber) Equals(other AccountNumber) bool {
	return n.value == other.value
}

// EqualityComponents implements shared.ValueObject
func (n AccountNumber) EqualityComponents() []any {
	return []any{n.value}
}
