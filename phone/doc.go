// Package phone wraps the libphonenumber metadata behind the two questions
// this module's validators ask: is a string a possible phone number at
// all, and is it valid for a specific country.
//
//	lookup := phone.Lookup{}
//	lookup.IsPossibleNumber("+254721909893")            // true
//	lookup.IsValidNumberForCountry("+254721909893", "KE") // true
//	lookup.IsValidNumberForCountry("+254721909893", "US") // false
//
// All knowledge about numbering plans and country codes lives in
// github.com/nyaruka/phonenumbers; this package performs no independent
// checks of its own. Lookups are in-process, non-blocking, and safe for
// concurrent use.
package phone
