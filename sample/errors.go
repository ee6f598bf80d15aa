package sample

import "errors"

var (
	// ErrEmptyDistribution is returned when there is nothing to sample from.
	ErrEmptyDistribution = errors.New("sample: empty distribution")

	// ErrLengthMismatch is returned when values and weights differ in length.
	ErrLengthMismatch = errors.New("sample: values and weights length mismatch")

	// ErrDegenerateDistribution is returned when a weight is negative or not
	// finite, or when the weights sum to zero.
	ErrDegenerateDistribution = errors.New("sample: weights must be non-negative with a positive sum")

	// ErrUniformOutOfRange is returned when the source breaks its [0, 1) contract.
	ErrUniformOutOfRange = errors.New("sample: uniform draw outside [0, 1]")
)
