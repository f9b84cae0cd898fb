package repository

import (
	"context"

	"gothampost/internal/cache"
	"gothampost/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context, limit, offset int) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := cache.Aside(ctx, cache.CategoryKey(id), &category, cache.CategoryTTL, func() error {
		return r.db.WithContext(ctx).First(&category, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.CategoryKey(category.ID))
	return nil
}

// Delete removes a category and cascades to the posts filed under it,
// including each post's comments and likes.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("category_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Unscoped().Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.CategoryKey(id))
	return nil
}
