package models

import "encoding/json"

// A database model for experiments that are periodically executed on all nodes.
type Schedule struct {
	ID       uint `gorm:"primarykey"`
	Enabled  bool
	Priority int
	// rdesc.Experiment
	Desc json.RawMessage `gorm:"type:jsonb"`
}

// Sequence is a named counter, used to hand out run seeds.
type Sequence struct {
	Key string `gorm:"primaryKey"`
	Val uint
}
