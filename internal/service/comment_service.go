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

// CommentService handles comments on posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Caller  authz.Caller
	PostID  uint
	Content string
}

type UpdateCommentInput struct {
	Caller    authz.Caller
	CommentID uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment adds a comment owned by the caller to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := authz.Check(in.Caller, authz.ActionCreateComment, in.Caller.UserID); err != nil {
		return nil, err
	}
	if err := s.postExists(ctx, in.PostID); err != nil {
		return nil, err
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: strings.TrimSpace(in.Content),
		UserID:  in.Caller.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.GetComment(ctx, comment.ID)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Comment", id)
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx, limit, offset)
}

func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// UpdateComment edits a comment's content. Owners who can publish may edit
// their own comments; admins may edit any.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if err := authz.Check(in.Caller, authz.ActionUpdateComment, comment.UserID); err != nil {
		return nil, err
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(in.Content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.GetComment(ctx, comment.ID)
}

// DeleteComment removes a comment. Owners may delete their own; admins any.
func (s *CommentService) DeleteComment(ctx context.Context, caller authz.Caller, id uint) error {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Check(caller, authz.ActionDeleteComment, comment.UserID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *CommentService) postExists(ctx context.Context, postID uint) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Post", postID)
	}
	return err
}
