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
	"github.com/synergysphere/synergysphere-api/internal/token"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *token.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string          `json:"name" binding:"required"`
		Email    string          `json:"email" binding:"required,email"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name, email, and password are required")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	respondData(c, http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	signed, err := h.tokens.Issue(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  signed,
		"data": gin.H{
			"user": dto.ToUserDTO(*user),
		},
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	respondData(c, http.StatusOK, dto.ToUserDTO(*user))
}

// ChangePassword verifies the current password and replaces it.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Current and new passwords are required")
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondAuthError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Password changed successfully")
}

// respondAuthError maps auth service errors to HTTP responses.
func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrWrongCurrentPassword):
		apierrors.Unauthorized(c, "Current password is incorrect")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrInvalidUserRole):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
