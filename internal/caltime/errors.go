package caltime

import "errors"

// Error kinds shared by all converters. Call sites attach context with
// github.com/pkg/errors and callers test the kind with errors.Is.
var (
	// ErrOutOfRange means a calendar or time field violates its bound.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMissingInput means a required input was not supplied.
	ErrMissingInput = errors.New("missing input")
)
