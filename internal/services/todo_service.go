package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"github.com/ludhill/avbackfronttodolistcrud/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrListNotFound        = errors.New("todo list not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrListAccessDenied    = errors.New("you do not own this todo list")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
)

// TodoService handles todo list and task business logic. Every read of an
// existing list or task goes through GetList/GetTask so the ownership
// check cannot be skipped ahead of a mutation.
type TodoService struct {
	listRepo repository.TodoListRepository
	taskRepo repository.TaskRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(listRepo repository.TodoListRepository, taskRepo repository.TaskRepository) *TodoService {
	return &TodoService{
		listRepo: listRepo,
		taskRepo: taskRepo,
	}
}

// GetList fetches a list with its author. A missing list is
// ErrListNotFound; when checkAuthor is set, a list owned by someone other
// than userID is ErrListAccessDenied.
func (s *TodoService) GetList(listID, userID uint64, checkAuthor bool) (*models.TodoList, error) {
	list, err := s.listRepo.FindByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to find todo list: %w", err)
	}

	if checkAuthor && list.AuthorID != userID {
		return nil, ErrListAccessDenied
	}

	return list, nil
}

// GetTask fetches a task scoped to both task and list ID, so a task ID
// that exists under another list is ErrTaskNotFound. When checkAuthor is
// set the parent list's author must be userID.
func (s *TodoService) GetTask(taskID, listID, userID uint64, checkAuthor bool) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDInList(taskID, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if checkAuthor {
		if _, err := s.GetList(task.ListID, userID, true); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// ListsForUser returns all lists authored by userID, newest first. The
// anonymous user ID 0 matches no row and yields an empty slice.
func (s *TodoService) ListsForUser(userID uint64) ([]models.TodoList, error) {
	lists, err := s.listRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}
	return lists, nil
}

// CreateList creates a new list owned by authorID.
func (s *TodoService) CreateList(title string, authorID uint64) (*models.TodoList, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	list := &models.TodoList{
		Title:    title,
		AuthorID: authorID,
	}

	if err := s.listRepo.Create(list); err != nil {
		return nil, fmt.Errorf("failed to create todo list: %w", err)
	}

	return s.listRepo.FindByID(list.ID)
}

// UpdateList sets a new title on a list the caller already owns.
func (s *TodoService) UpdateList(list *models.TodoList, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}

	list.Title = title
	if err := s.listRepo.Update(list); err != nil {
		return fmt.Errorf("failed to update todo list: %w", err)
	}

	return nil
}

// DeleteList deletes a list together with all of its tasks.
func (s *TodoService) DeleteList(listID uint64) error {
	if err := s.listRepo.DeleteWithTasks(listID); err != nil {
		return fmt.Errorf("failed to delete todo list: %w", err)
	}
	return nil
}

// ListTasks returns the tasks of a list, oldest first.
func (s *TodoService) ListTasks(listID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new, not yet completed task in a list.
func (s *TodoService) CreateTask(listID uint64, description string) (*models.Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	task := &models.Task{
		Description: description,
		Completed:   false,
		ListID:      listID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask sets description and completed flag on a task the caller
// already owns.
func (s *TodoService) UpdateTask(task *models.Task, description string, completed bool) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}

	task.Description = description
	task.Completed = completed
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// ToggleTask flips the completed flag of a task.
func (s *TodoService) ToggleTask(task *models.Task) error {
	task.Completed = !task.Completed
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	return nil
}

// DeleteTask deletes a single task.
func (s *TodoService) DeleteTask(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
