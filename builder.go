package mobileschema

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mobileschema/phone"
	"github.com/dmitrymomot/mobileschema/schema"
)

// NumberLookup answers the two phone-number questions a built validator
// asks. phone.Lookup is the default implementation; tests and callers with
// their own numbering data can substitute it via Builder.Lookup.
type NumberLookup interface {
	IsPossibleNumber(value string) bool
	IsValidNumberForCountry(value, countryCode string) bool
}

// Messages overrides specific validation messages. An empty slot keeps the
// default message computed from the configured field names at Build time.
type Messages struct {
	EmptyMobileNumber       string
	EmptyCountryCode        string
	InvalidFormat           string
	InvalidNumberForCountry string
}

// Builder accumulates validator configuration through chained setters and
// assembles an immutable Validator on Build. A builder can be reconfigured
// and reused to produce further, independent validators, but it must not
// be mutated concurrently.
type Builder struct {
	mobileField    string
	countryField   string
	mobileRequired bool
	custom         Messages
	lookup         NumberLookup
}

// NewBuilder returns a builder with the default configuration: field names
// "mobileNumber" and "countryCode", a required mobile number, and the
// libphonenumber-backed lookup.
func NewBuilder() *Builder {
	return &Builder{
		mobileField:    "mobileNumber",
		countryField:   "countryCode",
		mobileRequired: true,
		lookup:         phone.Lookup{},
	}
}

// MobileNumberField renames the mobile-number field and sets whether it is
// required. The name becomes both the record lookup key and the field name
// embedded in default messages. The name is not validated; an empty string
// simply becomes the lookup key.
func (b *Builder) MobileNumberField(name string, required bool) *Builder {
	b.mobileField = name
	b.mobileRequired = required
	return b
}

// CountryCodeField renames the country-code field. The field is always
// required to be a non-empty string.
func (b *Builder) CountryCodeField(name string) *Builder {
	b.countryField = name
	return b
}

// CustomErrors merges the non-empty slots of m into the configured
// overrides. The last write per slot wins; slots set by earlier calls
// persist.
func (b *Builder) CustomErrors(m Messages) *Builder {
	if m.EmptyMobileNumber != "" {
		b.custom.EmptyMobileNumber = m.EmptyMobileNumber
	}
	if m.EmptyCountryCode != "" {
		b.custom.EmptyCountryCode = m.EmptyCountryCode
	}
	if m.InvalidFormat != "" {
		b.custom.InvalidFormat = m.InvalidFormat
	}
	if m.InvalidNumberForCountry != "" {
		b.custom.InvalidNumberForCountry = m.InvalidNumberForCountry
	}
	return b
}

// Lookup replaces the phone-number knowledge base consulted by validators
// built afterwards.
func (b *Builder) Lookup(l NumberLookup) *Builder {
	b.lookup = l
	return b
}

// Build assembles a Validator from the current configuration. The
// configuration and the resolved messages are snapshotted, so later setter
// calls do not affect validators already built. Any failure during
// assembly, returned or panicked, is normalized through
// NormalizeCreationError; on failure no partial validator is returned.
func (b *Builder) Build() (v *Validator, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, NormalizeCreationError(r)
		}
	}()

	if b.lookup == nil {
		return nil, NormalizeCreationError(errors.New("number lookup is nil"))
	}

	msgs := b.resolveMessages()

	mobile := schema.OptionalString(b.mobileField)
	if b.mobileRequired {
		mobile = schema.String(b.mobileField, msgs.EmptyMobileNumber)
	}
	country := schema.String(b.countryField, msgs.EmptyCountryCode)

	obj, err := schema.NewObject(mobile, country)
	if err != nil {
		return nil, NormalizeCreationError(err)
	}

	mobileField, countryField, lookup := b.mobileField, b.countryField, b.lookup
	obj.Refine(func(values map[string]string, issues *schema.Issues) {
		number := values[mobileField]
		if number == "" {
			// Optional and absent: no further mobile-number checks.
			return
		}
		if !lookup.IsPossibleNumber(number) {
			issues.Add(schema.Issue{
				Path:    []string{mobileField},
				Message: msgs.InvalidFormat,
			})
			return
		}
		if !lookup.IsValidNumberForCountry(number, values[countryField]) {
			issues.Add(schema.Issue{
				Path:    []string{mobileField},
				Message: msgs.InvalidNumberForCountry,
			})
		}
	})

	return &Validator{object: obj}, nil
}

// resolveMessages computes the effective message set: explicit overrides
// where present, defaults embedding the current field names otherwise.
func (b *Builder) resolveMessages() Messages {
	msgs := Messages{
		EmptyMobileNumber:       fmt.Sprintf("%s cannot be empty", b.mobileField),
		EmptyCountryCode:        fmt.Sprintf("%s cannot be empty", b.countryField),
		InvalidFormat:           "The mobile number format is incorrect",
		InvalidNumberForCountry: fmt.Sprintf("The mobile number is not valid for the provided %s", b.countryField),
	}
	if b.custom.EmptyMobileNumber != "" {
		msgs.EmptyMobileNumber = b.custom.EmptyMobileNumber
	}
	if b.custom.EmptyCountryCode != "" {
		msgs.EmptyCountryCode = b.custom.EmptyCountryCode
	}
	if b.custom.InvalidFormat != "" {
		msgs.InvalidFormat = b.custom.InvalidFormat
	}
	if b.custom.InvalidNumberForCountry != "" {
		msgs.InvalidNumberForCountry = b.custom.InvalidNumberForCountry
	}
	return msgs
}

// Validator checks candidate records against the configuration captured at
// Build time. It holds no reference back to the builder and is safe for
// concurrent use.
type Validator struct {
	object *schema.Object
}

// Validate applies the validator to a candidate record. It returns nil
// when the record is accepted, or a schema.Issues error listing every
// failure. At most one mobile-number issue and at most one country-code
// issue are produced per call.
func (v *Validator) Validate(rec schema.Record) error {
	_, err := v.object.Parse(rec)
	return err
}
