package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/dto"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
	}
}

// List returns the caller's projects.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.ListProjectsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToProjectDTOs(projects))
}

// Create creates a project owned by the caller.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name and description are required")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	respondData(c, http.StatusCreated, dto.ToProjectDTO(*project))
}

// Get returns a project with its member list.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, exists := middleware.GetProject(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	detail, members, err := h.projectService.GetProjectWithMembers(project.ID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToProjectDetailDTO(*detail, members))
}

// Update applies a partial project update.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	project, exists := middleware.GetProject(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.projectService.UpdateProject(project.ID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToProjectDTO(*updated))
}

// AddMember adds a user to the project.
func (h *ProjectHandler) AddMember(c *gin.Context) {
	type AddMemberRequest struct {
		UserID uint64             `json:"user_id" binding:"required"`
		Role   models.ProjectRole `json:"role"`
	}

	project, exists := middleware.GetProject(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	member, err := h.projectService.AddMember(project.ID, req.UserID, req.Role)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	respondData(c, http.StatusCreated, member)
}

// ListTasks returns the project's tasks.
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	project, exists := middleware.GetProject(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	tasks, err := h.taskService.ListProjectTasks(project.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToTaskDTOs(tasks))
}

// respondProjectError maps project service errors to HTTP responses.
func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrInvalidProjectInput):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrAlreadyProjectMember):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidMemberRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		apierrors.InternalError(c, "")
	}
}
