package repository

import (
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"gorm.io/gorm"
)

// GormTodoListRepository is a GORM implementation of TodoListRepository
type GormTodoListRepository struct {
	db *gorm.DB
}

// NewTodoListRepository creates a new TodoListRepository
func NewTodoListRepository(db *gorm.DB) TodoListRepository {
	return &GormTodoListRepository{db: db}
}

// Create creates a new todo list
func (r *GormTodoListRepository) Create(list *models.TodoList) error {
	return r.db.Create(list).Error
}

// FindByID finds a list by ID with its author loaded
func (r *GormTodoListRepository) FindByID(id uint64) (*models.TodoList, error) {
	var list models.TodoList
	if err := r.db.Preload("Author").First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// ListByAuthor retrieves all lists of an author ordered by creation time,
// newest first. An author ID that matches no user yields an empty slice.
func (r *GormTodoListRepository) ListByAuthor(authorID uint64) ([]models.TodoList, error) {
	var lists []models.TodoList
	err := r.db.
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Update updates a todo list
func (r *GormTodoListRepository) Update(list *models.TodoList) error {
	return r.db.Save(list).Error
}

// DeleteWithTasks deletes a list and its tasks in one transaction so no
// task row can outlive its list.
func (r *GormTodoListRepository) DeleteWithTasks(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.TodoList{}, id).Error
	})
}
