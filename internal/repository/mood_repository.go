package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormMoodRepository is a GORM implementation of MoodRepository
type GormMoodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new MoodRepository
func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &GormMoodRepository{db: db}
}

// Create records a mood pulse
func (r *GormMoodRepository) Create(pulse *models.MoodPulse) error {
	return r.db.Create(pulse).Error
}

// ListByProject lists a project's mood pulses in submission order
func (r *GormMoodRepository) ListByProject(projectID uint64) ([]models.MoodPulse, error) {
	var pulses []models.MoodPulse
	if err := r.db.
		Where("project_id = ?", projectID).
		Order("mood_pulses.created_at ASC").
		Find(&pulses).Error; err != nil {
		return nil, err
	}
	return pulses, nil
}
