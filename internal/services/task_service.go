package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskInput  = errors.New("project ID, title, and description are required")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrAlreadyAssigned   = errors.New("user is already assigned to this task")
	ErrAssigneeNotMember = errors.New("user is not a member of this project")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrEmptyCommentBody  = errors.New("content is required")
	ErrNotCommentAuthor  = errors.New("only the comment author can perform this action")
)

// TaskService handles task, assignment and comment business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	workloads   *WorkloadService
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	workloads *WorkloadService,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		workloads:   workloads,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	ProjectID   uint64
	Title       string
	Description string
	Status      models.TaskStatus
	DueDate     *time.Time
	CreatedBy   uint64
}

// CreateTask creates a task inside a project the creator belongs to.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.ProjectID == 0 || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidTaskInput
	}

	if err := s.ensureProjectMember(input.ProjectID, input.CreatedBy); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !models.ValidTaskStatus(input.Status) {
		return nil, ErrInvalidTaskStatus
	}

	task := &models.Task{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns a task with its creator and assignees.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Creator", "Assignments", "Assignments.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ListProjectTasks returns the tasks of a project.
func (s *TaskService) ListProjectTasks(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskInput represents a partial task update.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	DueDate     *time.Time
}

// UpdateTask applies a partial update and restamps updated_at.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil && *input.Title != "" {
		task.Title = *input.Title
	}
	if input.Description != nil && *input.Description != "" {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !models.ValidTaskStatus(*input.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// AssignTask assigns a user to a task. The assignee must exist and be a member
// of the task's project at assignment time; the assignee's workload row is
// refreshed afterwards.
func (s *TaskService) AssignTask(taskID, userID uint64) (*models.TaskAssignment, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.projectRepo.FindMember(task.ProjectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotMember
		}
		return nil, fmt.Errorf("failed to verify project membership: %w", err)
	}

	if _, err := s.taskRepo.FindAssignment(taskID, userID); err == nil {
		return nil, ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify assignment: %w", err)
	}

	assignment := &models.TaskAssignment{
		TaskID:     taskID,
		UserID:     userID,
		AssignedAt: time.Now(),
	}

	if err := s.taskRepo.Assign(assignment); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}

	if err := s.workloads.SyncUserProject(userID, task.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to refresh workload: %w", err)
	}

	return assignment, nil
}

// ListComments returns a task's comments with their authors.
func (s *TaskService) ListComments(taskID uint64) ([]models.TaskComment, error) {
	comments, err := s.commentRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddComment records a comment on a task.
func (s *TaskService) AddComment(taskID, userID uint64, content string) (*models.TaskComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCommentBody
	}

	comment := &models.TaskComment{
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if author, err := s.userRepo.FindByID(userID); err == nil {
		comment.User = *author
	}

	return comment, nil
}

// UpdateComment replaces a comment's content. Only the author or a global
// admin may edit.
func (s *TaskService) UpdateComment(commentID, actorID uint64, actorRole models.UserRole, content string) (*models.TaskComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCommentBody
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, ErrNotCommentAuthor
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment. Only the author or a global admin may
// delete; exactly one row is removed.
func (s *TaskService) DeleteComment(commentID, actorID uint64, actorRole models.UserRole) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.UserID != actorID && actorRole != models.UserRoleAdmin {
		return ErrNotCommentAuthor
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// ensureProjectMember verifies that a user belongs to a project.
func (s *TaskService) ensureProjectMember(projectID, userID uint64) error {
	_, err := s.projectRepo.FindMember(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotProjectMember
		}
		return fmt.Errorf("failed to verify project membership: %w", err)
	}
	return nil
}
