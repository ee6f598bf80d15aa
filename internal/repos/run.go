package repos

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/chancekit/internal/models"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) *RunRepo {
	return &RunRepo{
		db: db,
	}
}

func (r *RunRepo) Create(run *models.Run) error {
	return r.db.Create(run).Error
}

func (r *RunRepo) FetchLastRuns(name string, limit int) ([]models.Run, error) {
	var runs []models.Run
	err := r.db.
		Where("name = ?", name).
		Order("id DESC").
		Limit(limit).
		Find(&runs).
		Error
	if err != nil {
		return nil, fmt.Errorf("find runs: %w", err)
	}
	return runs, nil
}

type OutcomeRepo struct {
	db *gorm.DB
}

func NewOutcomeRepo(db *gorm.DB) *OutcomeRepo {
	return &OutcomeRepo{
		db: db,
	}
}

func (r *OutcomeRepo) SaveAll(outcomes []models.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	const batchSize = 500
	return r.db.CreateInBatches(outcomes, batchSize).Error
}

func (r *OutcomeRepo) FindByRun(runID uint) ([]models.Outcome, error) {
	var outcomes []models.Outcome
	err := r.db.
		Where("run_id = ?", runID).
		Order("key ASC").
		Find(&outcomes).
		Error
	return outcomes, err
}
