package dft

import "errors"

var (
	// ErrInvalidSize is returned when the transform size is invalid.
	ErrInvalidSize = errors.New("invalid transform size")

	// ErrSizeMismatch is returned when buffer sizes don't match the plan.
	ErrSizeMismatch = errors.New("buffer size mismatch")

	// ErrFormatMismatch is returned when a transform method is called on
	// a plan with the wrong format.
	ErrFormatMismatch = errors.New("plan format mismatch")

	// ErrDirectionMismatch is returned when a transform method is called
	// on a plan with the wrong direction.
	ErrDirectionMismatch = errors.New("plan direction mismatch")
)
