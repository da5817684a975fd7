package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// TunnelHandler coordinates similarity tunnel HTTP handlers.
type TunnelHandler struct {
	tunnelService *services.TunnelService
}

// NewTunnelHandler creates a new TunnelHandler.
func NewTunnelHandler(tunnelService *services.TunnelService) *TunnelHandler {
	return &TunnelHandler{
		tunnelService: tunnelService,
	}
}

// List returns the stored tunnels of a source entity.
func (h *TunnelHandler) List(c *gin.Context) {
	sourceType := c.Query("source_type")
	sourceIDParam := c.Query("source_id")
	if sourceType == "" || sourceIDParam == "" {
		apierrors.BadRequest(c, "source_type and source_id are required")
		return
	}

	sourceID, err := strconv.ParseUint(sourceIDParam, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid source ID")
		return
	}

	tunnels, err := h.tunnelService.ListForSource(models.TunnelEntityType(sourceType), sourceID)
	if err != nil {
		respondTunnelError(c, err)
		return
	}

	respondData(c, http.StatusOK, tunnels)
}

// Generate discovers and persists new tunnels for a source task.
func (h *TunnelHandler) Generate(c *gin.Context) {
	type GenerateRequest struct {
		SourceType models.TunnelEntityType `json:"source_type" binding:"required"`
		SourceID   uint64                  `json:"source_id" binding:"required"`
		Threshold  float64                 `json:"threshold"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "source_type and source_id are required")
		return
	}

	tunnels, err := h.tunnelService.Generate(c.Request.Context(), req.SourceType, req.SourceID, req.Threshold)
	if err != nil {
		respondTunnelError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"generated": len(tunnels),
		"tunnels":   tunnels,
	})
}

// respondTunnelError maps tunnel service errors to HTTP responses.
func respondTunnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidTunnelSource):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTunnelSourceNotTask):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTunnelSourceNotFound):
		apierrors.NotFound(c, "Source task not found")
	default:
		apierrors.InternalError(c, "")
	}
}
