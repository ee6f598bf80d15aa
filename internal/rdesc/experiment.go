package rdesc

import "encoding/json"

type Act string

const (
	ActWeighted   Act = "weighted"
	ActDice       Act = "dice"
	ActCustomDice Act = "custom_dice"
	ActCoin       Act = "coin"
	ActCard       Act = "card"
	ActJitter     Act = "jitter"
	ActSchedules  Act = "schedules"
)

// Experiment describes an experiment to be run. Can be serialized and deserialized to/from JSON.
type Experiment struct {
	// Name of the experiment, used for logs, metrics and locking.
	// Defaults to the act.
	Name string
	// Kind of the experiment
	Act Act
	// Interval to run the experiment. If not set, it will be run once.
	// Format:
	// - "random(5,10)" - run the experiment randomly every 5-10 seconds
	Periodic string
	// Number of draws per run.
	Draws int
	// Number of workers sharing the draws. Zero means the node default.
	Workers int
	// Seed for every run. Zero means a fresh seed per run.
	Seed uint64
	// Arguments passed to the experiment constructor
	Args json.RawMessage
	// Timeout for a single run.
	Timeout *Duration
}

func (e *Experiment) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return string(e.Act)
}
