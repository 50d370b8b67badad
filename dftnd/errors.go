package dftnd

import "errors"

var (
	// ErrInvalidDimensions is returned when the dimension list is empty
	// or contains a non-positive size.
	ErrInvalidDimensions = errors.New("invalid transform dimensions")

	// ErrSizeMismatch is returned when buffer sizes don't match the plan.
	ErrSizeMismatch = errors.New("buffer size mismatch")

	// ErrFormatMismatch is returned when a transform method is called on
	// a plan with the wrong format.
	ErrFormatMismatch = errors.New("plan format mismatch")

	// ErrDirectionMismatch is returned when a transform method is called
	// on a plan with the wrong direction.
	ErrDirectionMismatch = errors.New("plan direction mismatch")
)
