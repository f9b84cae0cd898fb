package service

import (
	"context"
	"errors"

	"gothampost/internal/authz"
	"gothampost/internal/models"
	"gothampost/internal/repository"

	"gorm.io/gorm"
)

// LikeService handles liking and unliking posts.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// LikePost records the caller's like on a post. A user can like a post at
// most once; the unique index catches races past the pre-check.
func (s *LikeService) LikePost(ctx context.Context, caller authz.Caller, postID uint) (*models.Like, error) {
	if err := authz.Check(caller, authz.ActionCreateLike, caller.UserID); err != nil {
		return nil, err
	}
	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.GetByUserAndPost(ctx, caller.UserID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You have already liked this post")
	}

	like := &models.Like{
		UserID: caller.UserID,
		PostID: postID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("You have already liked this post")
		}
		return nil, err
	}

	return like, nil
}

func (s *LikeService) GetLike(ctx context.Context, id uint) (*models.Like, error) {
	like, err := s.likeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Like", id)
	}
	if err != nil {
		return nil, err
	}
	return like, nil
}

func (s *LikeService) ListLikes(ctx context.Context, limit, offset int) ([]*models.Like, error) {
	return s.likeRepo.List(ctx, limit, offset)
}

func (s *LikeService) ListLikesByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Like, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByPost(ctx, postID, limit, offset)
}

// UnlikePost removes the caller's like from a post. Owners may remove their
// own like; admins any.
func (s *LikeService) UnlikePost(ctx context.Context, caller authz.Caller, postID uint) error {
	if err := s.postExists(ctx, postID); err != nil {
		return err
	}

	like, err := s.likeRepo.GetByUserAndPost(ctx, caller.UserID, postID)
	if err != nil {
		return err
	}
	if like == nil {
		return models.NewNotFoundError("Like on post", postID)
	}
	if err := authz.Check(caller, authz.ActionDeleteLike, like.UserID); err != nil {
		return err
	}
	return s.likeRepo.Delete(ctx, like.ID)
}

// DeleteLike removes a like by id. Owners may remove their own; admins any.
func (s *LikeService) DeleteLike(ctx context.Context, caller authz.Caller, id uint) error {
	like, err := s.GetLike(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Check(caller, authz.ActionDeleteLike, like.UserID); err != nil {
		return err
	}
	return s.likeRepo.Delete(ctx, id)
}

func (s *LikeService) postExists(ctx context.Context, postID uint) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post", postID)
	}
	return err
}
