package valueobject

import (
	"strings"
	"unicode/utf8"

	"github.com/ccasync/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// MaxNamePartLength is the longest first or last name accepted, in characters
const MaxNamePartLength = 100

// Customer name errors
var (
	ErrNameEmptyFirstName   = shared.NewError("CustomerName.EmptyFirstName", "First name cannot be empty")
	ErrNameFirstNameTooLong = shared.NewError("CustomerName.FirstNameTooLong", "First name cannot exceed 100 characters")
	ErrNameEmptyLastName    = shared.NewError("CustomerName.EmptyLastName", "Last name cannot be empty")
	ErrNameLastNameTooLong  = shared.NewError("CustomerName.LastNameTooLong", "Last name cannot exceed 100 characters")
)

// CustomerName is a person's first and last name.
// Both parts are NFC-normalised so that visually identical names compare equal
// regardless of how the source system composed accented characters.
type CustomerName struct {
	firstName string
	lastName  string
}

// NewCustomerName creates a CustomerName
func NewCustomerName(firstName, lastName string) shared.ResultOf[CustomerName] {
	firstName = norm.NFC.String(strings.TrimSpace(firstName))
	lastName = norm.NFC.String(strings.TrimSpace(lastName))

	if firstName == "" {
		return shared.FailureOf[CustomerName](ErrNameEmptyFirstName)
	}
	if utf8.RuneCountInString(firstName) > MaxNamePartLength {
		return shared.FailureOf[CustomerName](ErrNameFirstNameTooLong)
	}
	if lastName == "" {
		return shared.FailureOf[CustomerName](ErrNameEmptyLastName)
	}
	if utf8.RuneCountInString(lastName) > MaxNamePartLength {
		return shared.FailureOf[CustomerName](ErrNameLastNameTooLong)
	}
	return shared.SuccessOf(CustomerName{firstName: firstName, lastName: lastName})
}

// FirstName returns the first name
func (n CustomerName) FirstName() string {
	return n.firstName
}

// LastName returns the last name
func (n CustomerName) LastName() string {
	return n.lastName
}

// FullName returns "First Last"
func (n CustomerName) FullName() string {
	return strings.TrimSpace(n.firstName + " " + n.lastName)
}

// SortName returns "Last, First"
func (n CustomerName) SortName() string {
	return n.lastName + ", " + n.firstName
}

// String returns the full name
func (n CustomerName) String() string {
	return n.FullName()
}

// Equals returns true if both names are equal
func (n CustomerName) Equals(other CustomerName) bool {
	return n.firstName == other.firstName && n.lastName == other.lastName
}

// EqualityComponents implements shared.ValueObject
func (n CustomerName) EqualityComponents() []any {
	return []any{n.firstName, n.lastName}
}
