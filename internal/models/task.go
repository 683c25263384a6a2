package models

import "time"

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	ListID      uint64    `gorm:"not null;index" json:"list_id"`
	CreatedAt   time.Time `json:"created"`

	// Relations
	List TodoList `gorm:"foreignKey:ListID" json:"list,omitempty"`
}
