package dto

import (
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
)

// TaskAssigneeDTO represents one assignee of a task
type TaskAssigneeDTO struct {
	UserID     uint64    `json:"user_id"`
	Name       string    `json:"name"`
	AssignedAt time.Time `json:"assigned_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"task_id"`
	ProjectID   uint64            `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"due_date"`
	CreatedBy   uint64            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Assignees   []TaskAssigneeDTO `json:"assignees,omitempty"`
}

// CommentDTO represents a task comment in API responses
type CommentDTO struct {
	ID        uint64    `json:"comment_id"`
	TaskID    uint64    `json:"task_id"`
	UserID    uint64    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include assignees if preloaded
	if len(task.Assignments) > 0 {
		dto.Assignees = make([]TaskAssigneeDTO, len(task.Assignments))
		for i, assignment := range task.Assignments {
			dto.Assignees[i] = TaskAssigneeDTO{
				UserID:     assignment.UserID,
				Name:       assignment.User.Name,
				AssignedAt: assignment.AssignedAt,
			}
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks to DTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToCommentDTO converts a TaskComment model to CommentDTO
func ToCommentDTO(comment models.TaskComment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		UserName:  comment.User.Name,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// ToCommentDTOs converts a slice of comments to DTOs
func ToCommentDTOs(comments []models.TaskComment) []CommentDTO {
	items := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		items[i] = ToCommentDTO(comment)
	}
	return items
}
