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

// PostService handles post authoring, reads, edits, and deletion.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	Caller     authz.Caller
	Title      string
	Content    string
	CategoryID *uint
}

type UpdatePostInput struct {
	Caller     authz.Caller
	PostID     uint
	Title      *string
	Content    *string
	CategoryID *uint
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

// CreatePost authors a post owned by the caller. The owner is always the
// authenticated identity; a user id in the request body is ignored.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := authz.Check(in.Caller, authz.ActionCreatePost, in.Caller.UserID); err != nil {
		return nil, err
	}
	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.categoryExists(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		UserID:     in.Caller.UserID,
		CategoryID: in.CategoryID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post", id)
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *PostService) ListPostsByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.categoryExists(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByCategoryID(ctx, categoryID, limit, offset)
}

// UpdatePost edits a post's mutable fields. Owners who can publish may edit
// their own posts; admins may edit any. Ownership never changes on update.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if err := authz.Check(in.Caller, authz.ActionUpdatePost, post.UserID); err != nil {
		return nil, err
	}

	title := post.Title
	content := post.Content
	if in.Title != nil {
		title = *in.Title
	}
	if in.Content != nil {
		content = *in.Content
	}
	if err := validatePostFields(title, content); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.categoryExists(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}

	post.Title = strings.TrimSpace(title)
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, post.ID)
}

// DeletePost removes a post and its comments and likes. Admin only.
func (s *PostService) DeletePost(ctx context.Context, caller authz.Caller, id uint) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Check(caller, authz.ActionDeletePost, post.UserID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

func (s *PostService) categoryExists(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Category", id)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}
