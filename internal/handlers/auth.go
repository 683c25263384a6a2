package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/constants"
	"github.com/ludhill/avbackfronttodolistcrud/internal/dto"
	apierrors "github.com/ludhill/avbackfronttodolistcrud/internal/errors"
	"github.com/ludhill/avbackfronttodolistcrud/internal/middleware"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RegisterForm answers the GET variant of the registration route. The
// HTML form itself is rendered client-side.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Register creates a new user. On success the caller is expected to log
// in; no session is established here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			apierrors.Conflict(c, fmt.Sprintf("User %s is already registered.", req.Username))
			return
		}
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please log in.",
		"user":    dto.ToUserDTO(*user),
	})
}

// LoginForm answers the GET variant of the login route.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Login authenticates a user. Any prior session state is discarded before
// the new session is bound to the user id.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the session. Safe to call while already logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You have been logged out.",
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrPasswordRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrIncorrectUsername):
		apierrors.Unauthorized(c, "Incorrect username.")
	case errors.Is(err, services.ErrIncorrectPassword):
		apierrors.Unauthorized(c, "Incorrect password.")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
