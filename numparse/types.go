package numparse

import "errors"

// Sentinel errors for numeric parsing.
var (
	// ErrNoNumber indicates the input does not start with (or contain) an integer.
	ErrNoNumber = errors.New("numparse: no integer found")

	// ErrOutOfRange indicates the integer does not fit the requested type.
	ErrOutOfRange = errors.New("numparse: integer out of range")
)
