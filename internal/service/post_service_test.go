package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gothampost/internal/authz"
	"gothampost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func registeredCaller(id uint) authz.Caller {
	return authz.Caller{UserID: id, Role: models.RoleRegisteredUser}
}

func adminCaller(id uint) authz.Caller {
	return authz.Caller{UserID: id, Role: models.RoleAdmin}
}

func readerCaller(id uint) authz.Caller {
	return authz.Caller{UserID: id, Role: models.RoleReader}
}

func TestCreatePostSetsOwnerFromCaller(t *testing.T) {
	postRepo := noopPostRepo()
	var created *models.Post
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 10
		created = p
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return created, nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		Caller:  registeredCaller(3),
		Title:   "Breaking news",
		Content: "Something happened downtown.",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), post.UserID)
}

func TestCreatePostDeniedForReader(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopCategoryRepo())
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Caller:  readerCaller(3),
		Title:   "Breaking news",
		Content: "Content",
	})
	requireAppError(t, err, models.CodeForbidden)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopCategoryRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Caller: registeredCaller(3), Title: "", Content: "body",
	})
	requireAppError(t, err, models.CodeValidation)

	_, err = svc.CreatePost(context.Background(), CreatePostInput{
		Caller: registeredCaller(3), Title: strings.Repeat("x", 256), Content: "body",
	})
	requireAppError(t, err, models.CodeValidation)

	_, err = svc.CreatePost(context.Background(), CreatePostInput{
		Caller: registeredCaller(3), Title: "title", Content: "   ",
	})
	requireAppError(t, err, models.CodeValidation)
}

func TestCreatePostUnknownCategory(t *testing.T) {
	categoryRepo := noopCategoryRepo()
	categoryRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Category, error) {
		return nil, errRecordNotFound()
	}

	svc := NewPostService(noopPostRepo(), categoryRepo)
	badID := uint(99)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Caller: registeredCaller(3), Title: "title", Content: "body", CategoryID: &badID,
	})
	requireAppError(t, err, models.CodeNotFound)
}

func TestUpdatePostOwnership(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1, Title: "old", Content: "old body"}, nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())
	newTitle := "new title"

	// Non-owner is denied even with a publishing role.
	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		Caller: registeredCaller(2), PostID: 5, Title: &newTitle,
	})
	requireAppError(t, err, models.CodeForbidden)

	// Owner may edit.
	_, err = svc.UpdatePost(context.Background(), UpdatePostInput{
		Caller: registeredCaller(1), PostID: 5, Title: &newTitle,
	})
	require.NoError(t, err)

	// Admin may edit anyone's.
	_, err = svc.UpdatePost(context.Background(), UpdatePostInput{
		Caller: adminCaller(9), PostID: 5, Title: &newTitle,
	})
	require.NoError(t, err)
}

func TestDeletePostAdminOnly(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}
	deleted := false
	postRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := NewPostService(postRepo, noopCategoryRepo())

	// Even the owner cannot delete their own post.
	err := svc.DeletePost(context.Background(), registeredCaller(1), 5)
	requireAppError(t, err, models.CodeForbidden)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(context.Background(), adminCaller(9), 5))
	assert.True(t, deleted)
}

func TestGetPostNotFound(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = notFoundPost

	svc := NewPostService(postRepo, noopCategoryRepo())
	_, err := svc.GetPost(context.Background(), 42)
	requireAppError(t, err, models.CodeNotFound)
}
