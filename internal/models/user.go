// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole is the access level assigned to a user. Roles are stored by name
// and carried in the JWT role claim.
type UserRole string

const (
	// RoleAdmin can manage every resource, including other users' content.
	RoleAdmin UserRole = "Admin"
	// RoleRegisteredUser can author posts, comments, and likes.
	RoleRegisteredUser UserRole = "RegisteredUser"
	// RoleReader has read-only access. New registrations always start here.
	RoleReader UserRole = "Reader"
)

// ParseRole returns the UserRole for the given name, or false if the name
// is not a known role.
func ParseRole(name string) (UserRole, bool) {
	switch UserRole(name) {
	case RoleAdmin, RoleRegisteredUser, RoleReader:
		return UserRole(name), true
	}
	return "", false
}

// CanPublish reports whether the role may author posts, comments, and likes.
func (r UserRole) CanPublish() bool {
	return r == RoleAdmin || r == RoleRegisteredUser
}

// User represents a registered account in the Gotham Post application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:100;unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      UserRole       `gorm:"size:32;not null;default:Reader" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments  []Comment      `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Likes     []Like         `gorm:"foreignKey:UserID" json:"likes,omitempty"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
