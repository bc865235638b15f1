package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Lookup answers phone-number questions using the embedded libphonenumber
// metadata. The zero value is ready to use; all methods are stateless and
// safe for concurrent callers.
type Lookup struct{}

// IsPossibleNumber reports whether value is a syntactically possible phone
// number. No country context is applied, so the value must be in
// international format with a leading "+" and country calling code.
// Possibility is a length check against the calling code's numbering plan,
// not full validity.
func (Lookup) IsPossibleNumber(value string) bool {
	num, err := phonenumbers.Parse(value, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}

// IsValidNumberForCountry reports whether value is a valid phone number
// specifically for the given ISO 3166-1 alpha-2 country code. The country
// code is used as the default region, so national-format values are
// accepted too. Unrecognized or empty country codes yield false.
func (Lookup) IsValidNumberForCountry(value, countryCode string) bool {
	region := strings.ToUpper(countryCode)
	num, err := phonenumbers.Parse(value, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, region)
}
