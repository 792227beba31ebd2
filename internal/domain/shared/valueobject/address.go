package valueobject

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ccasync/backend/internal/domain/shared"
)

// Address field limits
const (
	MaxStreetLength = 200
	MaxCityLength   = 100
)

var postalCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// stateCodes is the set of accepted USPS state and territory codes
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "DC": {},
	"FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {},
	"LA": {}, "ME": {}, "MD": {}, "MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {},
	"NE": {}, "NV": {}, "NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {}, "TX": {}, "UT": {},
	"VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// Address errors
var (
	ErrAddressEmptyStreet       = shared.NewError("Address.EmptyStreet", "Street cannot be empty")
	ErrAddressStreetTooLong     = shared.NewError("Address.StreetTooLong", "Street cannot exceed 200 characters")
	ErrAddressEmptyCity         = shared.NewError("Address.EmptyCity", "City cannot be empty")
	ErrAddressCityTooLong       = shared.NewError("Address.CityTooLong", "City cannot exceed 100 characters")
	ErrAddressInvalidState      = shared.NewError("Address.InvalidState", "State must be a valid two-letter US state code")
	ErrAddressInvalidPostalCode = shared.NewError("Address.InvalidPostalCode", "Postal code must be a 5-digit or ZIP+4 code")
)

// Address is a value object representing a US service or mailing address.
// It is immutable - all operations return new Address instances.
type Address struct {
	street1    string
	street2    string
	city       string
	state      string
	postalCode string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithStreet2 sets the secondary street line (apartment, suite, unit)
func WithStreet2(street2 string) AddressOption {
	return func(a *Address) {
		a.street2 = strings.TrimSpace(street2)
	}
}

// NewAddress creates a new Address. street2 is optional and set through WithStreet2.
func NewAddress(street1, city, state, postalCode string, opts ...AddressOption) shared.ResultOf[Address] {
	addr := Address{
		street1:    strings.TrimSpace(street1),
		city:       strings.TrimSpace(city),
		state:      strings.ToUpper(strings.TrimSpace(state)),
		postalCode: strings.TrimSpace(postalCode),
	}
	for _, opt := range opts {
		opt(&addr)
	}

	if addr.street1 == "" {
		return shared.FailureOf[Address](ErrAddressEmptyStreet)
	}
	if len(addr.street1) > MaxStreetLength || len(addr.street2) > MaxStreetLength {
		return shared.FailureOf[Address](ErrAddressStreetTooLong)
	}
	if addr.city == "" {
		return shared.FailureOf[Address](ErrAddressEmptyCity)
	}
	if len(addr.city) > MaxCityLength {
		return shared.FailureOf[Address](ErrAddressCityTooLong)
	}
	if _, ok := stateCodes[addr.state]; !ok {
		return shared.FailureOf[Address](ErrAddressInvalidState)
	}
	if !postalCodePattern.MatchString(addr.postalCode) {
		return shared.FailureOf[Address](ErrAddressInvalidPostalCode)
	}

	return shared.SuccessOf(addr)
}

// IsValidStateCode reports whether code is an accepted state or territory code
func IsValidStateCode(code string) bool {
	_, ok := stateCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Street1 returns the primary street line
func (a Address) Street1() string {
	return a.street1
}

// Street2 returns the secondary street line
func (a Address) Street2() string {
	return a.street2
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// State returns the two-letter state code
func (a Address) State() string {
	return a.state
}

// PostalCode returns the ZIP or ZIP+4 code
func (a Address) PostalCode() string {
	return a.postalCode
}

// ZIP5 returns the first five digits of the postal code
func (a Address) ZIP5() string {
	if len(a.postalCode) < 5 {
		return a.postalCode
	}
	return a.postalCode[:5]
}

// IsEmpty returns true if the address is the zero value
func (a Address) IsEmpty() bool {
	return a.street1 == "" && a.city == "" && a.state == "" && a.postalCode == ""
}

// SingleLine returns the address on one line: "Street1, Street2, City, ST 12345"
func (a Address) SingleLine() string {
	if a.IsEmpty() {
		return ""
	}
	parts := make([]string, 0, 3)
	parts = append(parts, a.street1)
	if a.street2 != "" {
		parts = append(parts, a.street2)
	}
	parts = append(parts, a.city)
	return fmt.Sprintf("%s, %s %s", strings.Join(parts, ", "), a.state, a.postalCode)
}

// String returns the single-line address
func (a Address) String() string {
	return a.SingleLine()
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return shared.ValueObjectsEqual(a, other)
}

// EqualityComponents implements shared.ValueObject
func (a Address) EqualityComponents() []any {
	return []any{a.street1, a.street2, a.city, a.state, a.postalCode}
}

// WithStreet returns a new Address with the updated street lines
func (a Address) WithStreet(street1, street2 string) shared.ResultOf[Address] {
	return NewAddress(street1, a.city, a.state, a.postalCode, WithStreet2(street2))
}

// addressJSON is used for JSON marshaling
type addressJSON struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street1:    a.street1,
		Street2:    a.street2,
		City:       a.city,
		State:      a.state,
		PostalCode: a.postalCode,
	})
}

// UnmarshalJSON implements json.Unmarshaler, applying the same validation as NewAddress.
// An all-empty payload yields the empty Address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Street1 == "" && v.City == "" && v.State == "" && v.PostalCode == "" {
		*a = Address{}
		return nil
	}
	addr, err := NewAddress(v.Street1, v.City, v.State, v.PostalCode, WithStreet2(v.Street2)).Unwrap()
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
