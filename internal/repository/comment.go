package repository

import (
	"context"

	"gothampost/internal/cache"
	"gothampost/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	List(ctx context.Context, limit, offset int) ([]*models.Comment, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	// The cached post embeds its comment count.
	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Select("id", "post_id").First(&comment, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(comment.PostID))
	return nil
}
