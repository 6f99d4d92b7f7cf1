package fault

import "errors"

// Predefined errors for Id parsing.
var (
	// ErrInvalidIdFormat indicates that the string representation of an Id
	// is not a base 10 integer.
	ErrInvalidIdFormat = errors.New("invalid id format")

	// ErrInvalidPosition indicates that a structural position could not be
	// parsed as a non negative integer.
	ErrInvalidPosition = errors.New("invalid position")
)
