// Package service implements the application's business logic on top of the
// repository layer. Permission decisions are delegated to the authz policy.
package service

import (
	"net/mail"
	"strings"

	"gothampost/internal/models"
)

const (
	maxUsernameLen = 100
	maxTitleLen    = 255
	maxNameLen     = 100
	maxContentLen  = 50000
	maxCommentLen  = 10000
	minPasswordLen = 6
)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.NewValidationError("Username is required")
	}
	if len(username) > maxUsernameLen {
		return models.NewValidationError("Username too long (max 100 characters)")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return models.NewValidationError("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return models.NewValidationError("Email is not a valid address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return models.NewValidationError("Password must be at least 6 characters")
	}
	return nil
}

func validatePostFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 255 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(name) > maxNameLen {
		return models.NewValidationError("Name too long (max 100 characters)")
	}
	return nil
}
