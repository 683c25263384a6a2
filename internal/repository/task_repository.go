package repository

import (
	"github.com/ludhill/avbackfronttodolistcrud/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByIDInList finds a task scoped to both its ID and list ID. A task
// that exists under a different list is reported as not found.
func (r *GormTaskRepository) FindByIDInList(id, listID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("id = ? AND list_id = ?", id, listID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByList retrieves all tasks of a list ordered by creation time,
// oldest first.
func (r *GormTaskRepository) ListByList(listID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("list_id = ?", listID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
