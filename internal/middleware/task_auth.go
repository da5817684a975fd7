package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/constants"
	"github.com/synergysphere/synergysphere-api/internal/database"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/models"
)

// RequireTaskAccess checks that the :id task exists and the caller is a member
// of the task's project. The task is stored in context with its relations.
func RequireTaskAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().
			Preload("Creator").
			Preload("Assignments").
			Preload("Assignments.User").
			First(&task, taskID).Error; err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		var member models.ProjectMember
		err = database.GetDB().
			Where("project_id = ? AND user_id = ?", task.ProjectID, userID).
			First(&member).Error
		if err != nil {
			apierrors.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}

// GetTask retrieves the task loaded by RequireTaskAccess
func GetTask(c *gin.Context) (models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}
	task, ok := value.(models.Task)
	return task, ok
}
