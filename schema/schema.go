package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue represents a single validation failure at a field path.
type Issue struct {
	Path    []string
	Message string
}

// Issues represents an ordered collection of validation issues. It
// implements the error interface so a failed Parse can be returned as a
// regular error while keeping the structured field-level details
// recoverable through Extract.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, issue := range is {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(issue.Path, "."), issue.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (is *Issues) Add(issue Issue) {
	*is = append(*is, issue)
}

func (is Issues) Has(path string) bool {
	for _, issue := range is {
		if strings.Join(issue.Path, ".") == path {
			return true
		}
	}
	return false
}

func (is Issues) Get(path string) []string {
	var messages []string
	for _, issue := range is {
		if strings.Join(issue.Path, ".") == path {
			messages = append(messages, issue.Message)
		}
	}
	return messages
}

func (is Issues) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, issue := range is {
		path := strings.Join(issue.Path, ".")
		if !seen[path] {
			paths = append(paths, path)
			seen[path] = true
		}
	}
	return paths
}

func (is Issues) IsEmpty() bool {
	return len(is) == 0
}

// Extract returns the structured issues carried by err, or nil if err does
// not originate from this package.
func Extract(err error) Issues {
	if err == nil {
		return nil
	}

	var issues Issues
	if errors.As(err, &issues) {
		return issues
	}

	return nil
}

// IsSchemaError reports whether err carries structured issues from this
// package.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}

	var issues Issues
	return errors.As(err, &issues)
}

// Record is a candidate input record keyed by caller-chosen field names.
type Record map[string]any

// StringField declares a named string field of an object shape.
type StringField struct {
	key          string
	optional     bool
	emptyMessage string
}

// String declares a required string field that must be present and
// non-empty. emptyMessage is reported when the field is absent or empty.
func String(key, emptyMessage string) StringField {
	return StringField{key: key, emptyMessage: emptyMessage}
}

// OptionalString declares a string field that may be absent or empty.
func OptionalString(key string) StringField {
	return StringField{key: key, optional: true}
}

// Check is a cross-field refinement step. It receives the values that
// passed the field checks, keyed by field name, and may add any number of
// issues. Optional fields that were absent or empty are not in the map.
type Check func(values map[string]string, issues *Issues)

// Object describes the shape of a record: a fixed set of named string
// fields plus zero or more refinement checks. Fields of the candidate
// record that are not declared are ignored.
type Object struct {
	fields []StringField
	checks []Check
}

// NewObject builds an object shape from the given fields. Field keys must
// be distinct.
func NewObject(fields ...StringField) (*Object, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFieldKey, f.key)
		}
		seen[f.key] = struct{}{}
	}
	return &Object{fields: fields}, nil
}

// Refine appends a cross-field check. Checks run in registration order,
// and only when every field check passed.
func (o *Object) Refine(check Check) *Object {
	o.checks = append(o.checks, check)
	return o
}

// Parse validates a candidate record against the object shape. On success
// it returns the validated field values keyed by field name. On failure it
// returns an Issues error listing every field-level failure, or every
// refinement issue if the fields themselves were acceptable.
func (o *Object) Parse(rec Record) (map[string]string, error) {
	var issues Issues
	values := make(map[string]string, len(o.fields))

	for _, f := range o.fields {
		raw, present := rec[f.key]
		if !present || raw == nil {
			if !f.optional {
				issues.Add(Issue{Path: []string{f.key}, Message: f.emptyMessage})
			}
			continue
		}

		s, ok := raw.(string)
		if !ok {
			issues.Add(Issue{Path: []string{f.key}, Message: "must be a string"})
			continue
		}

		if s == "" {
			if !f.optional {
				issues.Add(Issue{Path: []string{f.key}, Message: f.emptyMessage})
			}
			continue
		}

		values[f.key] = s
	}

	// Refinements only see structurally valid values.
	if !issues.IsEmpty() {
		return nil, issues
	}

	for _, check := range o.checks {
		check(values, &issues)
	}

	if !issues.IsEmpty() {
		return nil, issues
	}

	return values, nil
}
