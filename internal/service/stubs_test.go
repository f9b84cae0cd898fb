package service

import (
	"context"

	"gothampost/internal/models"

	"gorm.io/gorm"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	listFn       func(context.Context, int, int) ([]*models.User, error)
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		listFn:       func(_ context.Context, _, _ int) ([]*models.User, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getByUserIDFn     func(context.Context, uint, int, int) ([]*models.Post, error)
	getByCategoryIDFn func(context.Context, uint, int, int) ([]*models.Post, error)
	listFn            func(context.Context, int, int) ([]*models.Post, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByCategoryIDFn(ctx, categoryID, limit, offset)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn:     func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		getByCategoryIDFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		listFn:            func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listFn       func(context.Context, int, int) ([]*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn:       func(_ context.Context, _, _ int) ([]*models.Comment, error) { return nil, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn           func(context.Context, *models.Like) error
	getByIDFn          func(context.Context, uint) (*models.Like, error)
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Like, error)
	listFn             func(context.Context, int, int) ([]*models.Like, error)
	listByPostFn       func(context.Context, uint, int, int) ([]*models.Like, error)
	deleteFn           func(context.Context, uint) error
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *likeRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Like, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Like, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *likeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:           func(_ context.Context, _ *models.Like) error { return nil },
		getByIDFn:          func(_ context.Context, _ uint) (*models.Like, error) { return &models.Like{}, nil },
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Like, error) { return nil, nil },
		listFn:             func(_ context.Context, _, _ int) ([]*models.Like, error) { return nil, nil },
		listByPostFn:       func(_ context.Context, _ uint, _, _ int) ([]*models.Like, error) { return nil, nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn  func(context.Context, *models.Category) error
	getByIDFn func(context.Context, uint) (*models.Category, error)
	listFn    func(context.Context, int, int) ([]*models.Category, error)
	updateFn  func(context.Context, *models.Category) error
	deleteFn  func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:  func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Category, error) { return &models.Category{}, nil },
		listFn:    func(_ context.Context, _, _ int) ([]*models.Category, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

// notFoundPost is a convenience for stubbing missing rows.
func notFoundPost(_ context.Context, _ uint) (*models.Post, error) {
	return nil, gorm.ErrRecordNotFound
}

func errRecordNotFound() error {
	return gorm.ErrRecordNotFound
}
