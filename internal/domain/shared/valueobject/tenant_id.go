package valueobject

import (
	"regexp"
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
)

var tenantIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

// Tenant ID errors
var (
	ErrTenantIDEmpty         = shared.NewError("TenantId.Empty", "Tenant id cannot be empty")
	ErrTenantIDInvalidFormat = shared.NewError("TenantId.InvalidFormat",
		"Tenant id must be 3-64 lowercase letters, digits or hyphens and cannot start or end with a hyphen")
)

// TenantID identifies the CCA tenant that owns an aggregate.
// It is a lowercase slug such as "marin-clean-energy".
type TenantID struct {
	value string
}

// NewTenantID creates a TenantID from a raw string
func NewTenantID(value string) shared.ResultOf[TenantID] {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return shared.FailureOf[TenantID](ErrTenantIDEmpty)
	}
	if !tenantIDPattern.MatchString(value) {
		return shared.FailureOf[TenantID](ErrTenantIDInvalidFormat)
	}
	return shared.SuccessOf(TenantID{value: value})
}

// MustNewTenantID creates a TenantID, panics on error
func MustNewTenantID(value string) TenantID {
	return NewTenantID(value).Value()
}

// Value returns the tenant slug
func (t TenantID) Value() string {
	return t.value
}

// IsZero returns true for the zero TenantID
func (t TenantID) IsZero() bool {
	return t.value == ""
}

// String returns the tenant slug
func (t TenantID) String() string {
	return t.value
}

// Equals returns true if both tenant ids are equal
func (t TenantID) Equals(other TenantID) bool {
	return t.value == other.value
}

// EqualityComponents implements shared.ValueObject
func (t TenantID) EqualityComponents() []any {
	return []any{t.value}
}
