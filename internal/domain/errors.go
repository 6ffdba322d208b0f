package domain

import "errors"

var (
	// ErrInvalidInput rejects a descriptor at the boundary.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDecode marks a failed dimension decode. It never leaves the analyzer;
	// the metadata carries UnknownDimensions instead.
	ErrDecode = errors.New("decode failed")
	// ErrCancelled is returned when an analysis is stopped between phases.
	ErrCancelled = errors.New("analysis cancelled")
)

// UnknownDimensions is the metadata value used when decoding fails.
const UnknownDimensions = "Unknown"
