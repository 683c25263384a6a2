package dto

import (
	"time"

	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
)

// TodoListDTO represents a todo list in API responses, carrying the
// author's username the way the list pages render it.
type TodoListDTO struct {
	ID       uint64    `json:"id"`
	Title    string    `json:"title"`
	Created  time.Time `json:"created"`
	AuthorID uint64    `json:"author_id"`
	Username string    `json:"username,omitempty"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Created     time.Time `json:"created"`
	ListID      uint64    `json:"list_id"`
}

// ToTodoListDTO converts a TodoList model to TodoListDTO
func ToTodoListDTO(list models.TodoList) TodoListDTO {
	dto := TodoListDTO{
		ID:       list.ID,
		Title:    list.Title,
		Created:  list.CreatedAt,
		AuthorID: list.AuthorID,
	}

	// Include the username if the author was preloaded
	if list.Author.ID != 0 {
		dto.Username = list.Author.Username
	}

	return dto
}

// ToTodoListDTOs converts a slice of lists
func ToTodoListDTOs(lists []models.TodoList) []TodoListDTO {
	dtos := make([]TodoListDTO, len(lists))
	for i, list := range lists {
		dtos[i] = ToTodoListDTO(list)
	}
	return dtos
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		Created:     task.CreatedAt,
		ListID:      task.ListID,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
