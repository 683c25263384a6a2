package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	apierrors "github.com/ludhill/avbackfronttodolistcrud/internal/errors"
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// RequireListOwner loads the todo list named by the :list_id parameter and
// verifies the current user authored it. The list ends up in the context
// so handlers do not re-fetch it. Runs after RequireAuth.
func RequireListOwner(todos *services.TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, err := strconv.ParseUint(c.Param("list_id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid list ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		list, err := todos.GetList(listID, userID, true)
		if err != nil {
			respondOwnershipError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyList, *list)
		c.Next()
	}
}

// GetContextList retrieves the todo list placed in the context by
// RequireListOwner or RequireTaskOwner.
func GetContextList(c *gin.Context) (models.TodoList, bool) {
	listInterface, exists := c.Get(constants.ContextKeyList)
	if !exists {
		return models.TodoList{}, false
	}

	list, ok := listInterface.(models.TodoList)
	return list, ok
}

func respondOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrListNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrListAccessDenied):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
