package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// DependencyHandler coordinates task dependency HTTP handlers.
type DependencyHandler struct {
	dependencyService *services.DependencyService
}

// NewDependencyHandler creates a new DependencyHandler.
func NewDependencyHandler(dependencyService *services.DependencyService) *DependencyHandler {
	return &DependencyHandler{
		dependencyService: dependencyService,
	}
}

// Create records that one task is blocked by another.
func (h *DependencyHandler) Create(c *gin.Context) {
	type CreateDependencyRequest struct {
		TaskID    uint64 `json:"task_id" binding:"required"`
		BlockedBy uint64 `json:"blocked_by" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Task ID and blocked_by are required")
		return
	}

	dependency, err := h.dependencyService.CreateDependency(req.TaskID, req.BlockedBy, userID)
	if err != nil {
		respondDependencyError(c, err)
		return
	}

	respondData(c, http.StatusCreated, dependency)
}

// Update moves a dependency between blocked and resolved.
func (h *DependencyHandler) Update(c *gin.Context) {
	type UpdateDependencyRequest struct {
		Status models.DependencyStatus `json:"status" binding:"required"`
	}

	dependencyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid dependency ID")
		return
	}

	var req UpdateDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Status is required")
		return
	}

	dependency, err := h.dependencyService.UpdateStatus(dependencyID, req.Status)
	if err != nil {
		respondDependencyError(c, err)
		return
	}

	respondData(c, http.StatusOK, dependency)
}

// Delete removes a dependency edge.
func (h *DependencyHandler) Delete(c *gin.Context) {
	dependencyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid dependency ID")
		return
	}

	if err := h.dependencyService.DeleteDependency(dependencyID); err != nil {
		respondDependencyError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Dependency deleted successfully")
}

// TaskView returns the one-hop dependency view of a task.
func (h *DependencyHandler) TaskView(c *gin.Context) {
	task, exists := middleware.GetTask(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	view, err := h.dependencyService.GetTaskDependencies(task.ID)
	if err != nil {
		respondDependencyError(c, err)
		return
	}

	respondData(c, http.StatusOK, view)
}

// respondDependencyError maps dependency service errors to HTTP responses.
func respondDependencyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDependencyNotFound):
		apierrors.NotFound(c, "Dependency not found")
	case errors.Is(err, services.ErrDependencyTaskNotFound):
		apierrors.NotFound(c, "One or both tasks not found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrInvalidDependencyState):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
