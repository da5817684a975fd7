package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/dto"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// WorkloadHandler coordinates workload HTTP handlers.
type WorkloadHandler struct {
	workloadService *services.WorkloadService
}

// NewWorkloadHandler creates a new WorkloadHandler.
func NewWorkloadHandler(workloadService *services.WorkloadService) *WorkloadHandler {
	return &WorkloadHandler{
		workloadService: workloadService,
	}
}

// GetUser returns a user's workload rows. Self or admin.
func (h *WorkloadHandler) GetUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	if claims.UserID != targetID && claims.Role != models.UserRoleAdmin {
		apierrors.Forbidden(c, "")
		return
	}

	workloads, err := h.workloadService.GetUserWorkload(targetID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToWorkloadDTOs(workloads))
}

// Update overrides the estimated hours on a workload row.
func (h *WorkloadHandler) Update(c *gin.Context) {
	type UpdateWorkloadRequest struct {
		EstimatedHours int `json:"estimated_hours" binding:"required"`
	}

	workloadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid workload ID")
		return
	}

	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateWorkloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Estimated hours is required")
		return
	}

	workload, err := h.workloadService.UpdateEstimatedHours(workloadID, claims.UserID, claims.Role, req.EstimatedHours)
	if err != nil {
		respondWorkloadError(c, err)
		return
	}

	respondData(c, http.StatusOK, workload)
}

// respondWorkloadError maps workload service errors to HTTP responses.
func respondWorkloadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkloadNotFound):
		apierrors.NotFound(c, "Workload not found")
	case errors.Is(err, services.ErrNotWorkloadOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidWorkloadHours):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
