package mobileschema

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dmitrymomot/mobileschema/schema"
)

// creationFailureKind classifies a failure raised while assembling a
// validator. The classification is exhaustive: every possible failure
// value falls into exactly one kind.
type creationFailureKind int

const (
	structuralFailure creationFailureKind = iota
	typeMismatchFailure
	genericFailure
	unknownFailure
)

func classifyCreationFailure(failure any) creationFailureKind {
	err, ok := failure.(error)
	if !ok {
		return unknownFailure
	}

	var issues schema.Issues
	if errors.As(err, &issues) {
		return structuralFailure
	}

	var typeErr *runtime.TypeAssertionError
	if errors.As(err, &typeErr) {
		return typeMismatchFailure
	}

	return genericFailure
}

// NormalizeCreationError maps an arbitrary failure raised during validator
// assembly to a descriptive error. Structural schema.Issues errors are
// returned unchanged so callers keep their field-level diagnostics intact;
// type-assertion failures, other errors, and non-error panic values each
// get a classification-specific message. The result is never nil.
func NormalizeCreationError(failure any) error {
	switch classifyCreationFailure(failure) {
	case structuralFailure:
		return failure.(error)
	case typeMismatchFailure:
		return fmt.Errorf("Validation schema creation failed due to a type error: %w. Please check if the fields are correctly typed.", failure.(error))
	case genericFailure:
		return fmt.Errorf("An unexpected error occurred during validation schema creation: %w. Please check the configuration and try again.", failure.(error))
	default:
		return errors.New("An unexpected unknown error occurred during validation schema creation. Please check the configuration and try again.")
	}
}
