package dice

import "errors"

// ErrInvalidArgument indicates a non-positive side count or a negative
// repeat count.
var ErrInvalidArgument = errors.New("dice: sides must be >= 1 and count must be >= 0")

// ErrEmptyFaces indicates a custom die with no faces.
var ErrEmptyFaces = errors.New("dice: custom die must have at least one face")

// ErrInvalidNotation indicates a dice expression that Parse cannot read.
var ErrInvalidNotation = errors.New("dice: invalid dice notation")
