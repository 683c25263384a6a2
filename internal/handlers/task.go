package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ludhill/avbackfronttodolistcrud/internal/dto"
	apierrors "github.com/ludhill/avbackfronttodolistcrud/internal/errors"
	"github.com/ludhill/avbackfronttodolistcrud/internal/middleware"
	"github.com/ludhill/avbackfronttodolistcrud/internal/services"
)

// TaskHandler serves the task routes. Every route is mounted behind the
// ownership middleware, so handlers read the checked entities from the
// context.
type TaskHandler struct {
	todoService *services.TodoService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(todoService *services.TodoService) *TaskHandler {
	return &TaskHandler{
		todoService: todoService,
	}
}

type taskRequest struct {
	Description string `form:"description" json:"description"`
	Completed   bool   `form:"completed" json:"completed"`
}

// ListTasks returns the tasks of a list, oldest first, together with the
// list itself.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	tasks, err := h.todoService.ListTasks(list.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todo_list": dto.ToTodoListDTO(list),
		"tasks":     dto.ToTaskDTOs(tasks),
	})
}

// CreateForm returns the parent list, for rendering the creation form.
func (h *TaskHandler) CreateForm(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todo_list": dto.ToTodoListDTO(list),
	})
}

// Create creates a new task in a list the current user owns.
func (h *TaskHandler) Create(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	var req taskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.todoService.CreateTask(list.ID, req.Description)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// EditForm returns the task and its list, for prefilling the update form.
func (h *TaskHandler) EditForm(c *gin.Context) {
	list, ok := middleware.GetContextList(c)
	if !ok {
		apierrors.InternalError(c, "Todo list not found in context")
		return
	}

	task, ok := middleware.GetContextTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todo_list": dto.ToTodoListDTO(list),
		"task":      dto.ToTaskDTO(task),
	})
}

// Update sets the description and completed flag of a task.
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := middleware.GetContextTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req taskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.UpdateTask(&task, req.Description, req.Completed); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// Toggle flips a task between completed and not completed.
func (h *TaskHandler) Toggle(c *gin.Context) {
	task, ok := middleware.GetContextTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.todoService.ToggleTask(&task); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task))
}

// Delete removes a single task.
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := middleware.GetContextTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.todoService.DeleteTask(task.ID); err != nil {
		respondTodoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}
