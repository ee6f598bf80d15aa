package signal

import "errors"

var (
	// ErrInvalidRange is returned for min > max, or min >= max where the
	// operation needs a non-empty span (wrap, normalize).
	ErrInvalidRange = errors.New("signal: invalid range")

	// ErrInvalidArgument is returned for a negative decay rate or time step.
	ErrInvalidArgument = errors.New("signal: invalid argument")
)
