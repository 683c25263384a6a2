package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/dto"
	apierrors "github.com/ludhill/avbackfronttodolistcrud/internal/errors"
	"github.com/ludhill/avbackfronttodolistcrud/internal/middleware"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// TodoListHandler serves the todo list routes.
type TodoListHandler struct {
	todoService *services.TodoService
}

// NewTodoListHandler creates a new TodoListHandler.
func NewTodoListHandler(todoService *services.TodoService) *TodoListHandler {
	return &TodoListHandler{
		todoService: todoService,
	}
}

type listRequest struct {
	Title string `form:"title" json:"title"`
}

// Index returns the current user's todo lists, newest first. Anonymous
// callers get an empty collection, not an error.
func (h *TodoListHandler) Index(c *gin.Context) {
	// Anonymous resolves to user id 0, which matches no list.
	userID, _ := middleware.GetUserID(c)

	lists, err := h.todoService.ListsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch todo lists")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todo_lists": dto.ToTodoListDTOs(lists),
	})
}

// CreateForm answers the GET variant of the list creation route.
func (h *TodoListHandler) CreateForm(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Create creates a new todo list owned by the current user.
func (h *TodoListHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req listRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	list, err := h.todoService.CreateList(req.Title, userID)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoListDTO(*list))
}

// EditForm returns the list being edited, for prefilling the update form.
// The ownership middleware has already loaded and checked it.
func (h *TodoListHandler) EditForm(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListDTO(list))
}

// Update changes the title of a list the current user owns.
func (h *TodoListHandler) Update(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	var req listRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.UpdateList(&list, req.Title); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListDTO(list))
}

// Delete removes a list and every task in it.
func (h *TodoListHandler) Delete(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	if err := h.todoService.DeleteList(list.ID); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo list deleted successfully",
	})
}

func respondTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrListNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrListAccessDenied):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
