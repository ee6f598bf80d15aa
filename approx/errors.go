package approx

import "errors"

var (
	// ErrInvalidDigits is returned for a digit count outside [0, MaxDigits].
	ErrInvalidDigits = errors.New("approx: digits must be in [0, 15]")

	// ErrUnknownRelation is returned by ParseRelation.
	ErrUnknownRelation = errors.New("approx: unknown relation")
)
