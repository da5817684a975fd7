package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/constants"
	"github.com/synergysphere/synergysphere-api/internal/database"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/models"
)

// RequireProjectAccess checks that the :id project exists and the caller is a
// member of it. The project and membership are stored in context.
func RequireProjectAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().First(&project, projectID).Error; err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		var member models.ProjectMember
		err = database.GetDB().
			Where("project_id = ? AND user_id = ?", projectID, userID).
			First(&member).Error
		if err != nil {
			apierrors.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, project)
		c.Set(constants.ContextKeyMember, member)
		c.Next()
	}
}

// RequireProjectManager allows project owners and global admins through. Must
// run after RequireProjectAccess.
func RequireProjectManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberValue, exists := c.Get(constants.ContextKeyMember)
		if !exists {
			apierrors.Forbidden(c, "Project access required")
			c.Abort()
			return
		}

		member, ok := memberValue.(models.ProjectMember)
		if !ok {
			apierrors.InternalError(c, "Invalid project member data")
			c.Abort()
			return
		}

		claims, _ := GetClaims(c)
		if member.Role != models.ProjectRoleOwner && (claims == nil || claims.Role != models.UserRoleAdmin) {
			apierrors.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetProject retrieves the project loaded by RequireProjectAccess
func GetProject(c *gin.Context) (models.Project, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := value.(models.Project)
	return project, ok
}

// GetProjectMember retrieves the membership loaded by RequireProjectAccess
func GetProjectMember(c *gin.Context) (models.ProjectMember, bool) {
	value, exists := c.Get(constants.ContextKeyMember)
	if !exists {
		return models.ProjectMember{}, false
	}
	member, ok := value.(models.ProjectMember)
	return member, ok
}
