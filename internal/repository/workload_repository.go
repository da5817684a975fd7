package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkloadRepository is a GORM implementation of WorkloadRepository
type GormWorkloadRepository struct {
	db *gorm.DB
}

// NewWorkloadRepository creates a new WorkloadRepository
func NewWorkloadRepository(db *gorm.DB) WorkloadRepository {
	return &GormWorkloadRepository{db: db}
}

// Create creates a new workload row
func (r *GormWorkloadRepository) Create(workload *models.Workload) error {
	return r.db.Create(workload).Error
}

// FindByID finds a workload row by ID
func (r *GormWorkloadRepository) FindByID(id uint64) (*models.Workload, error) {
	var workload models.Workload
	if err := r.db.First(&workload, id).Error; err != nil {
		return nil, err
	}
	return &workload, nil
}

// FindByUserProject finds the workload row for a user/project pair
func (r *GormWorkloadRepository) FindByUserProject(userID, projectID uint64) (*models.Workload, error) {
	var workload models.Workload
	if err := r.db.Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&workload).Error; err != nil {
		return nil, err
	}
	return &workload, nil
}

// ListByUser lists a user's workload rows with project details
func (r *GormWorkloadRepository) ListByUser(userID uint64) ([]models.Workload, error) {
	var workloads []models.Workload
	if err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Find(&workloads).Error; err != nil {
		return nil, err
	}
	return workloads, nil
}

// ListAll retrieves every workload row
func (r *GormWorkloadRepository) ListAll() ([]models.Workload, error) {
	var workloads []models.Workload
	if err := r.db.Find(&workloads).Error; err != nil {
		return nil, err
	}
	return workloads, nil
}

// Update updates a workload row
func (r *GormWorkloadRepository) Update(workload *models.Workload) error {
	return r.db.Save(workload).Error
}
