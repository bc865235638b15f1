package mobileschema_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobileschema"
	"github.com/dmitrymomot/mobileschema/schema"
)

// typeAssertionFailure produces a real *runtime.TypeAssertionError the way
// assembly code would: by recovering from a failed type assertion.
func typeAssertionFailure() any {
	var failure any
	func() {
		defer func() { failure = recover() }()
		var v any = "not an int"
		_ = v.(int)
	}()
	return failure
}

func TestNormalizeCreationError(t *testing.T) {
	t.Run("structural issues pass through unchanged", func(t *testing.T) {
		issues := schema.Issues{{Path: []string{"mobileNumber"}, Message: "bad"}}

		err := mobileschema.NormalizeCreationError(issues)
		require.Error(t, err)
		assert.Equal(t, error(issues), err)
	})

	t.Run("wrapped structural issues pass through unchanged", func(t *testing.T) {
		issues := schema.Issues{{Path: []string{"mobileNumber"}, Message: "bad"}}
		wrapped := fmt.Errorf("assemble: %w", issues)

		err := mobileschema.NormalizeCreationError(wrapped)
		require.Error(t, err)
		assert.Equal(t, wrapped, err)
		assert.Equal(t, issues, schema.Extract(err))
	})

	t.Run("type assertion failures", func(t *testing.T) {
		failure := typeAssertionFailure()
		require.NotNil(t, failure)

		err := mobileschema.NormalizeCreationError(failure)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Validation schema creation failed due to a type error: ")
		assert.Contains(t, err.Error(), "Please check if the fields are correctly typed.")
	})

	t.Run("generic errors", func(t *testing.T) {
		err := mobileschema.NormalizeCreationError(errors.New("boom"))
		require.Error(t, err)
		assert.Equal(t,
			"An unexpected error occurred during validation schema creation: boom. Please check the configuration and try again.",
			err.Error())
	})

	t.Run("non-error failure values", func(t *testing.T) {
		for _, failure := range []any{"a raw string", 42, struct{}{}, nil} {
			err := mobileschema.NormalizeCreationError(failure)
			require.Error(t, err)
			assert.Equal(t,
				"An unexpected unknown error occurred during validation schema creation. Please check the configuration and try again.",
				err.Error())
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := mobileschema.NormalizeCreationError(errors.New("boom"))
		second := mobileschema.NormalizeCreationError(errors.New("boom"))
		assert.Equal(t, first.Error(), second.Error())
	})
}
