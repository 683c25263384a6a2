package repository

import (
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TodoListRepository defines the interface for todo list data access
type TodoListRepository interface {
	// Create creates a new todo list
	Create(list *models.TodoList) error

	// FindByID finds a list by ID with its author loaded
	FindByID(id uint64) (*models.TodoList, error)

	// ListByAuthor retrieves all lists of an author, newest first
	ListByAuthor(authorID uint64) ([]models.TodoList, error)

	// Update updates a todo list
	Update(list *models.TodoList) error

	// DeleteWithTasks deletes a list and its tasks in one transaction
	DeleteWithTasks(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByIDInList finds a task scoped to both its ID and list ID
	FindByIDInList(id, listID uint64) (*models.Task, error)

	// ListByList retrieves all tasks of a list, oldest first
	ListByList(listID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}
