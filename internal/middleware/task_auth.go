package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	apierrors "github.com/ludhill/avbackfronttodolistcrud/internal/errors"
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// RequireTaskOwner loads the task named by the :list_id/:task_id pair and
// verifies the current user authored its parent list. A task id that
// exists under a different list is reported as not found. Both the task
// and its list end up in the context. Runs after RequireAuth.
func RequireTaskOwner(todos *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, err := strconv.ParseUint(c.Param("list_id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid list ID")
			c.Abort()
			return
		}

		taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
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

		// The list lookup doubles as the author check for the task.
		list, err := todos.GetList(listID, userID, true)
		if err != nil {
			respondOwnershipError(c, err)
			c.Abort()
			return
		}

		task, err := todos.GetTask(taskID, listID, userID, false)
		if err != nil {
			respondOwnershipError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyList, *list)
		c.Set(constants.ContextKeyTask, *task)
		c.Next()
	}
}

// GetContextTask retrieves the task placed in the context by
// RequireTaskOwner.
func GetContextTask(c *gin.Context) (models.Task, bool) {
	taskInterface, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}

	task, ok := taskInterface.(models.Task)
	return task, ok
}
