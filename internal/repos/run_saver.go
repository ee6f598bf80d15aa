package repos

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/chancekit/internal/models"
)

// RunSaver fills node-wide fields and stores a finished run with its outcomes.
type RunSaver interface {
	Save(run *models.Run, outcomes []models.Outcome) error
}

type RunSaverArgs struct {
	Node string
}

func (a *RunSaverArgs) Apply(run *models.Run) {
	if run.Node == "" {
		run.Node = a.Node
	}
}

type DBRunSaver struct {
	db   *gorm.DB
	args RunSaverArgs
}

func NewDBRunSaver(db *gorm.DB, args RunSaverArgs) *DBRunSaver {
	return &DBRunSaver{
		db:   db,
		args: args,
	}
}

func (s *DBRunSaver) Save(run *models.Run, outcomes []models.Outcome) error {
	s.args.Apply(run)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewRunRepo(tx).Create(run); err != nil {
			return fmt.Errorf("create run: %w", err)
		}
		for i := range outcomes {
			outcomes[i].RunID = run.ID
		}
		if err := NewOutcomeRepo(tx).SaveAll(outcomes); err != nil {
			return fmt.Errorf("save outcomes: %w", err)
		}
		return nil
	})
}

// NopRunSaver only applies the args, for nodes without a database.
type NopRunSaver struct {
	args RunSaverArgs
}

func NewNopRunSaver(args RunSaverArgs) *NopRunSaver {
	return &NopRunSaver{args: args}
}

func (s *NopRunSaver) Save(run *models.Run, _ []models.Outcome) error {
	s.args.Apply(run)
	return nil
}
