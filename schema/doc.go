// Package schema provides a small declarative validator for record-shaped
// input: a fixed set of named string fields plus cross-field refinement
// checks, with structured, path-addressed issue reporting.
//
// The package is built around an Object describing the expected shape.
// Fields are declared with String (required, non-empty) or OptionalString,
// refinements are attached with Refine, and Parse evaluates a candidate
// record against the shape:
//
//	obj, err := schema.NewObject(
//		schema.String("email", "email cannot be empty"),
//		schema.OptionalString("nickname"),
//	)
//	if err != nil {
//		// duplicate field keys
//	}
//
//	obj.Refine(func(values map[string]string, issues *schema.Issues) {
//		if strings.Contains(values["nickname"], "@") {
//			issues.Add(schema.Issue{
//				Path:    []string{"nickname"},
//				Message: "must not look like an email address",
//			})
//		}
//	})
//
//	values, err := obj.Parse(schema.Record{"email": "a@b.co"})
//
// # Evaluation Order
//
// Field checks run first and collect every field-level failure. Refinement
// checks run only when all field checks passed, so they always observe
// structurally valid values; optional fields that were absent or empty do
// not appear in the values map.
//
// # Error Handling
//
// A failed Parse returns an Issues value, a slice that implements the
// error interface while preserving each failure's field path and message.
// Use Extract or IsSchemaError with any error (including wrapped ones) to
// recover the structured form:
//
//	if issues := schema.Extract(err); issues != nil {
//		for _, issue := range issues {
//			fmt.Printf("%v: %s\n", issue.Path, issue.Message)
//		}
//	}
//
// The package has no hidden state; Objects are cheap to build and safe for
// concurrent Parse calls once construction and Refine registration are
// done.
package schema
