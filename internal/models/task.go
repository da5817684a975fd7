package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// ValidTaskStatus reports whether s is one of the recognized task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"task_id"`
	ProjectID   uint64         `gorm:"not null;index" json:"project_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	DueDate     *time.Time     `json:"due_date"`
	CreatedBy   uint64         `gorm:"not null;index" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project     Project          `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator     User             `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
	Comments    []TaskComment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
