package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject retrieves the tasks of a project
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Where("project_id = ?", projectID).
		Order("tasks.created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListAll retrieves every task
func (r *GormTaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Assign records a task assignment
func (r *GormTaskRepository) Assign(assignment *models.TaskAssignment) error {
	return r.db.Create(assignment).Error
}

// FindAssignment finds a specific task assignment
func (r *GormTaskRepository) FindAssignment(taskID, userID uint64) (*models.TaskAssignment, error) {
	var assignment models.TaskAssignment
	if err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListAssignments lists the assignments of a task with user details
func (r *GormTaskRepository) ListAssignments(taskID uint64) ([]models.TaskAssignment, error) {
	var assignments []models.TaskAssignment
	if err := r.db.Preload("User").
		Where("task_id = ?", taskID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountAssignedTasks counts live tasks assigned to a user within a project
func (r *GormTaskRepository) CountAssignedTasks(userID, projectID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TaskAssignment{}).
		Joins("JOIN tasks ON tasks.id = task_assignments.task_id").
		Where("task_assignments.user_id = ? AND tasks.project_id = ? AND tasks.deleted_at IS NULL", userID, projectID).
		Count(&count).Error
	return count, err
}
