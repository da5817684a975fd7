package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/dto"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/middleware"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/services"
	"github.com/synergysphere/synergysphere-api/internal/utils"
)

// UserHandler coordinates user directory HTTP handlers.
type UserHandler struct {
	authService    *services.AuthService
	projectService *services.ProjectService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, projectService *services.ProjectService) *UserHandler {
	return &UserHandler{
		authService:    authService,
		projectService: projectService,
	}
}

// List returns all users, paginated. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	if claims.Role != models.UserRoleAdmin {
		apierrors.Forbidden(c, "Admin access required")
		return
	}

	params := utils.GetPaginationParams(c)
	users, total, err := h.authService.ListUsers(params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToUserListResponse(users, params.Page, params.Limit, total))
}

// Get returns one user with their project memberships. Self or admin.
func (h *UserHandler) Get(c *gin.Context) {
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

	user, err := h.authService.GetUser(targetID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	memberships, err := h.projectService.ListMembershipsForUser(targetID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	respondData(c, http.StatusOK, dto.ToUserDetailDTO(*user, memberships))
}

// Update applies a partial profile update. Self or admin.
func (h *UserHandler) Update(c *gin.Context) {
	type UpdateUserRequest struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

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

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateUser(targetID, services.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToUserDTO(*user))
}
