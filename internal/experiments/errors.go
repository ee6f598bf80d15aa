package experiments

import "errors"

var (
	ErrUnknownExperiment = errors.New("unknown experiment")
	ErrAlreadyRunning    = errors.New("experiment is already running")
	ErrInvalidArgs       = errors.New("invalid experiment args")
)
