package models

import (
	"time"

	"gorm.io/gorm"
)

// Run is a single execution of an experiment.
type Run struct {
	gorm.Model

	// Name of the experiment descriptor.
	Name string `gorm:"index"`

	// Act the experiment was loaded with, e.g. "weighted" or "dice".
	Act string

	// The node that executed the run.
	Node string

	// Seed is the uint64 run seed stored as its two's complement.
	Seed int64

	Draws   int
	Workers int

	// Distinct is the number of distinct outcomes observed.
	Distinct int

	RunResult
}

// RunResult is available only for finished runs.
type RunResult struct {
	StartedAt  *time.Time
	FinishedAt *time.Time
	Duration   *time.Duration

	// ChiSquare against the expected weights, if the experiment has them.
	ChiSquare *float64
	DOF       int

	IsFailed bool
	Error    string
}

// Outcome is how often one result was drawn during a run.
type Outcome struct {
	ID    uint `gorm:"primarykey"`
	RunID uint `gorm:"index"`

	Key       string
	Count     int64
	Frequency float64
}
