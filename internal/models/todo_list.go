package models

import "time"

type TodoList struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created"`

	// Relations
	Author User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tasks  []Task `gorm:"foreignKey:ListID" json:"tasks,omitempty"`
}
