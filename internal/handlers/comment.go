package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/dto"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/services"
)

// CommentHandler coordinates standalone comment HTTP handlers.
type CommentHandler struct {
	taskService *services.TaskService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(taskService *services.TaskService) *CommentHandler {
	return &CommentHandler{
		taskService: taskService,
	}
}

// Update replaces a comment's content. Author or admin only.
func (h *CommentHandler) Update(c *gin.Context) {
	type UpdateCommentRequest struct {
		Content string `json:"content" binding:"required"`
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid comment ID")
		return
	}

	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Content is required")
		return
	}

	comment, err := h.taskService.UpdateComment(commentID, claims.UserID, claims.Role, req.Content)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToCommentDTO(*comment))
}

// Delete removes a comment. Author or admin only.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid comment ID")
		return
	}

	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.taskService.DeleteComment(commentID, claims.UserID, claims.Role); err != nil {
		respondTaskError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Comment deleted successfully")
}
