package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique; the composite index
// makes concurrent duplicate-like attempts safe at the store level.
// Likes are hard-deleted, never soft-deleted.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
