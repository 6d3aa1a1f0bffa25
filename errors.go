package blobbify

import "errors"

// Sentinel errors.
var (
	// ErrInvalidInput is returned when text is not decodable Base64.
	ErrInvalidInput = errors.New("blobbify: invalid input")

	// ErrDuplicatePosition is returned when an explicit position is already in use.
	ErrDuplicatePosition = errors.New("blobbify: duplicate position")

	// ErrPositionOverflow is returned when the next position would not fit in an int.
	ErrPositionOverflow = errors.New("blobbify: position overflow")
)
