package schema

import "errors"

var (
	// ErrDuplicateFieldKey is returned by NewObject when two fields share
	// the same key.
	ErrDuplicateFieldKey = errors.New("duplicate field key")
)
