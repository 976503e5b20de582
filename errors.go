package slicepager

import "errors"

var (
	// ErrOutOfRange is returned when a page number falls outside [1, TotalPages].
	ErrOutOfRange = errors.New("page out of range")
	// ErrInvalidConfig is returned for non-positive ItemsPerPage, negative
	// thresholds, malformed templates and unknown sort columns.
	ErrInvalidConfig = errors.New("invalid pagination config")
	// ErrTypeMismatch is returned when sort keys are not mutually comparable.
	ErrTypeMismatch = errors.New("sort keys are not comparable")
)
