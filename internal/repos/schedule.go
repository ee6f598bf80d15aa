package repos

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/petuhovskiy/chancekit/internal/models"
)

type ScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{
		db: db,
	}
}

func (r *ScheduleRepo) AllEnabled() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.
		Where("enabled = ?", true).
		Order("priority ASC").
		Find(&schedules).
		Error
	if err != nil {
		return nil, fmt.Errorf("find schedules: %w", err)
	}
	return schedules, nil
}

func (r *ScheduleRepo) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}
