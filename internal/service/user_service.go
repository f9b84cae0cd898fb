package service

import (
	"context"
	"errors"
	"strings"

	"gothampost/internal/auth"
	"gothampost/internal/authz"
	"gothampost/internal/models"
	"gothampost/internal/repository"

	"gorm.io/gorm"
)

// UserService handles profile reads and updates, role changes, and account
// deletion.
type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

type UpdateUserInput struct {
	Caller   authz.Caller
	UserID   uint
	Username *string
	Email    *string
	Password *string
}

type ChangeRoleInput struct {
	Caller authz.Caller
	UserID uint
	Role   string
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateUser edits a profile. Users can edit their own profile; admins can
// edit anyone's. Role is never touched here, see ChangeRole.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if err := authz.Check(in.Caller, authz.ActionUpdateUser, user.ID); err != nil {
		return nil, err
	}

	if in.Username != nil {
		if err := validateUsername(*in.Username); err != nil {
			return nil, err
		}
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("An account with this email or username already exists")
		}
		return nil, err
	}
	return user, nil
}

// ChangeRole assigns a new role to a user. Admin only; tokens issued before
// the change keep their old role claim until they expire.
func (s *UserService) ChangeRole(ctx context.Context, in ChangeRoleInput) (*models.User, error) {
	if err := authz.Check(in.Caller, authz.ActionChangeUserRole, 0); err != nil {
		return nil, err
	}

	role, ok := models.ParseRole(in.Role)
	if !ok {
		return nil, models.NewValidationError("Unknown role: " + in.Role)
	}

	user, err := s.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account and cascades to its posts, comments, and
// likes. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, caller authz.Caller, id uint) error {
	if err := authz.Check(caller, authz.ActionDeleteUser, 0); err != nil {
		return err
	}
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
