package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// MoodHandler coordinates mood pulse HTTP handlers.
type MoodHandler struct {
	moodService *services.MoodService
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(moodService *services.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// Submit records a mood pulse from a project member.
func (h *MoodHandler) Submit(c *gin.Context) {
	type SubmitMoodRequest struct {
		ProjectID uint64 `json:"project_id" binding:"required"`
		MoodValue int    `json:"mood_value" binding:"required"`
		Comment   string `json:"comment"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req SubmitMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Project ID and mood value are required")
		return
	}

	pulse, err := h.moodService.SubmitPulse(userID, req.ProjectID, req.MoodValue, req.Comment)
	if err != nil {
		respondMoodError(c, err)
		return
	}

	respondData(c, http.StatusCreated, pulse)
}

// Report returns the per-day mood aggregation for a project.
func (h *MoodHandler) Report(c *gin.Context) {
	project, exists := middleware.GetProject(c)
	if !exists {
		apierrors.InternalError(c, "")
		return
	}

	report, err := h.moodService.ProjectReport(project.ID)
	if err != nil {
		respondMoodError(c, err)
		return
	}

	respondData(c, http.StatusOK, report)
}

// respondMoodError maps mood service errors to HTTP responses.
func respondMoodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidMoodValue):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		apierrors.InternalError(c, "")
	}
}
