package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post in the Gotham Post application.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes         []Like         `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}
