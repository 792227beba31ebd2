package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
)

var (
	phoneAllowedChars = regexp.MustCompile(`^[\d\s\-\.\(\)\+]+$`)
	phoneNANP         = regexp.MustCompile(`^[2-9]\d{2}[2-9]\d{6}$`)
)

// Phone number errors
var (
	ErrPhoneEmpty         = shared.NewError("PhoneNumber.Empty", "Phone number cannot be empty")
	ErrPhoneInvalidFormat = shared.NewError("PhoneNumber.InvalidFormat", "Phone number must be a valid 10-digit North American number")
)

// PhoneNumber is a North American (NANP) phone number stored as 10 digits
type PhoneNumber struct {
	digits string
}

// NewPhoneNumber parses a phone number, accepting common punctuation and a leading +1 / 1
func NewPhoneNumber(value string) shared.ResultOf[PhoneNumber] {
	value = strings.TrimSpace(value)
	if value == "" {
		return shared.FailureOf[PhoneNumber](ErrPhoneEmpty)
	}
	if !phoneAllowedChars.MatchString(value) {
		return shared.FailureOf[PhoneNumber](ErrPhoneInvalidFormat)
	}

	var sb strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if !phoneNANP.MatchString(digits) {
		return shared.FailureOf[PhoneNumber](ErrPhoneInvalidFormat)
	}
	return shared.SuccessOf(PhoneNumber{digits: digits})
}

// Digits returns the 10-digit number
func (p PhoneNumber) Digits() string {
	return p.digits
}

// Formatted returns the number as (555) 234-5678
func (p PhoneNumber) Formatted() string {
	if len(p.digits) != 10 {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", p.digits[:3], p.digits[3:6], p.digits[6:])
}

// E164 returns the number as +15552345678
func (p PhoneNumber) E164() string {
	if p.digits == "" {
		return ""
	}
	return "+1" + p.digits
}

// IsZero returns true for the zero PhoneNumber
func (p PhoneNumber) IsZero() bool {
	return p.digits == ""
}

// String returns the formatted number
func (p PhoneNumber) String() string {
	return p.Formatted()
}

// Equals returns true if both numbers are equal
func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.digits == other.digits
}

// EqualityComponents implements shared.ValueObject
func (p PhoneNumber) EqualityComponents() []any {
	return []any{p.digits}
}
