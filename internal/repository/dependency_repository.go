package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormDependencyRepository is a GORM implementation of DependencyRepository
type GormDependencyRepository struct {
	db *gorm.DB
}

// NewDependencyRepository creates a new DependencyRepository
func NewDependencyRepository(db *gorm.DB) DependencyRepository {
	return &GormDependencyRepository{db: db}
}

// Create creates a new dependency edge
func (r *GormDependencyRepository) Create(dependency *models.TaskDependency) error {
	return r.db.Create(dependency).Error
}

// FindByID finds a dependency by ID
func (r *GormDependencyRepository) FindByID(id uint64) (*models.TaskDependency, error) {
	var dependency models.TaskDependency
	if err := r.db.First(&dependency, id).Error; err != nil {
		return nil, err
	}
	return &dependency, nil
}

// Update updates a dependency
func (r *GormDependencyRepository) Update(dependency *models.TaskDependency) error {
	return r.db.Save(dependency).Error
}

// Delete removes a dependency. Edges are hard-deleted.
func (r *GormDependencyRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TaskDependency{}, id).Error
}

// ListBlockedBy lists edges where the given task is blocked
func (r *GormDependencyRepository) ListBlockedBy(taskID uint64) ([]models.TaskDependency, error) {
	var dependencies []models.TaskDependency
	if err := r.db.Preload("BlockingTask").
		Where("task_id = ?", taskID).
		Find(&dependencies).Error; err != nil {
		return nil, err
	}
	return dependencies, nil
}

// ListBlocking lists edges where the given task blocks others
func (r *GormDependencyRepository) ListBlocking(taskID uint64) ([]models.TaskDependency, error) {
	var dependencies []models.TaskDependency
	if err := r.db.Preload("Task").
		Where("blocked_by = ?", taskID).
		Find(&dependencies).Error; err != nil {
		return nil, err
	}
	return dependencies, nil
}
