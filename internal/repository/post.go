package repository

import (
	"context"

	"gothampost/internal/cache"
	"gothampost/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.applyPostDetails(r.db.WithContext(ctx)).
			Preload("User").
			Preload("Category").
			First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx)).
		Preload("User").
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// applyPostDetails adds subqueries to fetch comment and like counts in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(post.ID))
	return nil
}

// Delete removes a post together with its comments and likes in one
// transaction so no orphaned dependent survives.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(id))
	return nil
}
