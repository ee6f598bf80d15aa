package conf

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type App struct {
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	// PostgresDSN is a DSN for the postgres. Runs are not persisted when empty.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// DebugDB enables gorm query logging.
	DebugDB bool `env:"DEBUG_DB" envDefault:"false"`

	// Node is a name of the current node, recorded on every run.
	Node string `env:"NODE" envDefault:"local-laptop"`

	// Seed is the base every run seed is derived from, together with the node
	// and the seed sequence. Zero means the base is taken from the clock.
	Seed uint64 `env:"SEED" envDefault:"0"`

	// Workers is the default number of workers sharing the draws of a run.
	Workers int `env:"WORKERS" envDefault:"4"`

	// Digits is the precision used to bucket continuous outcomes.
	Digits int `env:"DIGITS" envDefault:"3"`

	// ExperimentsFile is a JSON array of experiment descriptors.
	ExperimentsFile string `env:"EXPERIMENTS_FILE" envDefault:"experiments.json"`

	// SchedulePoll is how often schedules are reloaded from the database.
	SchedulePoll time.Duration `env:"SCHEDULE_POLL" envDefault:"5s"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
