package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.TaskComment) error {
	return r.db.Create(comment).Error
}

// FindByID finds a comment by ID
func (r *GormCommentRepository) FindByID(id uint64) (*models.TaskComment, error) {
	var comment models.TaskComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTask lists the comments of a task with user details
func (r *GormCommentRepository) ListByTask(taskID uint64) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	if err := r.db.Preload("User").
		Where("task_id = ?", taskID).
		Order("task_comments.created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *GormCommentRepository) Update(comment *models.TaskComment) error {
	return r.db.Save(comment).Error
}

// Delete removes a comment. Comments are hard-deleted.
func (r *GormCommentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TaskComment{}, id).Error
}
