// Package mobileschema builds reusable validators for records carrying a
// mobile-number field and a country-code field.
//
// A Builder accumulates configuration through chained setters, and Build
// produces an immutable Validator that can be applied to any number of
// candidate records:
//
//	validator, err := mobileschema.NewBuilder().Build()
//	if err != nil {
//		// configuration fault, fix and rebuild
//	}
//
//	err = validator.Validate(schema.Record{
//		"mobileNumber": "+254721909893",
//		"countryCode":  "KE",
//	})
//	if issues := schema.Extract(err); issues != nil {
//		// each issue carries a field path and a human-readable message
//	}
//
// Validation runs in stages: the country-code field must be a non-empty
// string, the mobile-number field must be present and non-empty when
// required, the value must be a syntactically possible number, and finally
// the value must be valid for the declared country. At most one
// mobile-number issue and at most one country-code issue are reported per
// record.
//
// Field names, requiredness, and messages are configurable:
//
//	validator, err := mobileschema.NewBuilder().
//		MobileNumberField("phone", false).
//		CountryCodeField("country").
//		CustomErrors(mobileschema.Messages{
//			InvalidFormat: "That does not look like a phone number",
//		}).
//		Build()
//
// Default messages embed the field names configured at Build time, so
// renaming a field updates both the record lookup key and the wording of
// its messages. Reconfiguring a builder never affects validators already
// built.
//
// Phone-number knowledge comes from the phone subpackage (libphonenumber
// metadata) by default and can be substituted through the NumberLookup
// interface. Validators are immutable and safe for concurrent use; a
// Builder is not, and should be owned by a single configuration flow.
package mobileschema
