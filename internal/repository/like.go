package repository

import (
	"context"
	"errors"

	"gothampost/internal/cache"
	"gothampost/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	GetByID(ctx context.Context, id uint) (*models.Like, error)
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error)
	List(ctx context.Context, limit, offset int) ([]*models.Like, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Like, error)
	Delete(ctx context.Context, id uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return err
	}
	// The cached post embeds its like count.
	cache.Invalidate(ctx, cache.PostKey(like.PostID))
	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).First(&like, id).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// GetByUserAndPost returns the like a user placed on a post, or nil if they
// have not liked it.
func (r *likeRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) List(ctx context.Context, limit, offset int) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	return likes, err
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Like, error) {
	var likes []*models.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	return likes, err
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	var like models.Like
	if err := r.db.WithContext(ctx).Select("id", "post_id").First(&like, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Like{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(like.PostID))
	return nil
}
