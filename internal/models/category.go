package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups posts by topic. Only admins may manage categories.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;unique;not null" json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:CategoryID" json:"posts,omitempty"`
}
