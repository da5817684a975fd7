package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/dto"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// TaskHandler coordinates task and assignment HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create creates a task inside a project the caller belongs to.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		ProjectID   uint64            `json:"project_id" binding:"required"`
		Title       string            `json:"title" binding:"required"`
		Description string            `json:"description" binding:"required"`
		Status      models.TaskStatus `json:"status"`
		DueDate     *time.Time        `json:"due_date"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Project ID, title, and description are required")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusCreated, dto.ToTaskDTO(*task))
}

// Get returns a task with its assignees.
func (h *TaskHandler) Get(c *gin.Context) {
	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToTaskDTO(task))
}

// Update applies a partial task update.
func (h *TaskHandler) Update(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title       *string            `json:"title"`
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
		DueDate     *time.Time         `json:"due_date"`
	}

	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.taskService.UpdateTask(task.ID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToTaskDTO(*updated))
}

// Assign assigns a user to the task.
func (h *TaskHandler) Assign(c *gin.Context) {
	type AssignRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	assignment, err := h.taskService.AssignTask(task.ID, req.UserID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusCreated, assignment)
}

// ListComments returns the task's comments.
func (h *TaskHandler) ListComments(c *gin.Context) {
	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	comments, err := h.taskService.ListComments(task.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToCommentDTOs(comments))
}

// AddComment records a comment on the task.
func (h *TaskHandler) AddComment(c *gin.Context) {
	type AddCommentRequest struct {
		Content string `json:"content" binding:"required"`
	}

	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Content is required")
		return
	}

	comment, err := h.taskService.AddComment(task.ID, userID, req.Content)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusCreated, dto.ToCommentDTO(*comment))
}

// respondTaskError maps task service errors to HTTP responses.
func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrInvalidTaskInput):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrAssigneeNotMember):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAlreadyAssigned):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, "Comment not found")
	case errors.Is(err, services.ErrEmptyCommentBody):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotCommentAuthor):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
