package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// LoginPath is where unauthenticated callers of protected routes are sent.
const LoginPath = "/auth/login"

// CurrentUser resolves the acting user from the session cookie and stores
// it in the gin context. A missing session, or a session whose user id no
// longer exists, resolves to anonymous rather than an error.
func CurrentUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(constants.ContextKeyUserID).(uint64)
		if !ok {
			c.Next()
			return
		}

		user, err := auth.GetUser(userID)
		if err != nil {
			// Stale session: the referenced user is gone. Treat the
			// caller as anonymous.
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// RequireAuth redirects anonymous callers to the login page and stops the
// handler chain. It must run after CurrentUser.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetUserID(c); !exists {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetCurrentUser retrieves the loaded user model from context
func GetCurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := userInterface.(models.User)
	return user, ok
}
