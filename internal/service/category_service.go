package service

import (
	"context"
	"errors"
	"strings"

	"gothampost/internal/authz"
	"gothampost/internal/models"
	"gothampost/internal/repository"

	"gorm.io/gorm"
)

// CategoryService handles category management. Reads are public; all writes
// are admin only.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Caller      authz.Caller
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Caller      authz.Caller
	CategoryID  uint
	Name        *string
	Description *string
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := authz.Check(in.Caller, authz.ActionManageCategory, 0); err != nil {
		return nil, err
	}
	if err := validateCategoryName(in.Name); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Category", id)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx, limit, offset)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*models.Category, error) {
	if err := authz.Check(in.Caller, authz.ActionManageCategory, 0); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validateCategoryName(*in.Name); err != nil {
			return nil, err
		}
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A category with this name already exists")
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category and the posts filed under it. Admin only.
func (s *CategoryService) DeleteCategory(ctx context.Context, caller authz.Caller, id uint) error {
	if err := authz.Check(caller, authz.ActionManageCategory, 0); err != nil {
		return err
	}
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
