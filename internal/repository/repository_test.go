package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gothampost/internal/cache"
	"gothampost/internal/database"
	"gothampost/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username: name,
		Email:    name + "@x.dev",
		Password: "hash",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content", UserID: userID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestPostCountsComputedAtQueryTime(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := seedUser(t, db, "author", models.RoleRegisteredUser)
	fan := seedUser(t, db, "fan", models.RoleRegisteredUser)
	post := seedPost(t, db, author.ID, "counted")

	require.NoError(t, db.Create(&models.Comment{Content: "c1", UserID: fan.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "c2", UserID: author.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: fan.ID, PostID: post.ID}).Error)

	repo := NewPostRepository(db)
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentsCount)
	assert.Equal(t, 1, got.LikesCount)
	assert.Equal(t, "author", got.User.Username)

	// Soft-deleted comments drop out of the count.
	require.NoError(t, db.Where("content = ?", "c1").Delete(&models.Comment{}).Error)
	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCount)
}

func TestDuplicateLikeTranslatesToDuplicatedKey(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "fan", models.RoleRegisteredUser)
	post := seedPost(t, db, user.ID, "liked")

	repo := NewLikeRepository(db)
	require.NoError(t, repo.Create(ctx, &models.Like{UserID: user.ID, PostID: post.ID}))

	err := repo.Create(ctx, &models.Like{UserID: user.ID, PostID: post.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDuplicateEmailTranslatesToDuplicatedKey(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "a", Email: "dup@x.dev", Password: "h", Role: models.RoleReader,
	}))

	err := repo.Create(ctx, &models.User{
		Username: "b", Email: "dup@x.dev", Password: "h", Role: models.RoleReader,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPostDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := seedUser(t, db, "author", models.RoleRegisteredUser)
	post := seedPost(t, db, author.ID, "doomed")
	keeper := seedPost(t, db, author.ID, "survivor")

	require.NoError(t, db.Create(&models.Comment{Content: "on doomed", UserID: author.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "on survivor", UserID: author.ID, PostID: keeper.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: author.ID, PostID: post.ID}).Error)

	repo := NewPostRepository(db)
	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	assert.Equal(t, int64(0), likes)

	// The unrelated post and its comment survive.
	_, err = repo.GetByID(ctx, keeper.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", keeper.ID).Count(&comments).Error)
	assert.Equal(t, int64(1), comments)
}

func TestUserDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	victim := seedUser(t, db, "victim", models.RoleRegisteredUser)
	other := seedUser(t, db, "other", models.RoleRegisteredUser)
	victimPost := seedPost(t, db, victim.ID, "victim's post")
	otherPost := seedPost(t, db, other.ID, "other's post")

	// Content on the victim's post by someone else goes with the post.
	require.NoError(t, db.Create(&models.Comment{Content: "by other", UserID: other.ID, PostID: victimPost.ID}).Error)
	// The victim's activity on another post goes too.
	require.NoError(t, db.Create(&models.Comment{Content: "by victim", UserID: victim.ID, PostID: otherPost.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: victim.ID, PostID: otherPost.ID}).Error)

	repo := NewUserRepository(db)
	require.NoError(t, repo.Delete(ctx, victim.ID))

	_, err := repo.GetByID(ctx, victim.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("user_id = ?", victim.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// The other user's post is untouched.
	postRepo := NewPostRepository(db)
	_, err = postRepo.GetByID(ctx, otherPost.ID)
	require.NoError(t, err)
}

func TestCategoryDeleteCascadesToPosts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := seedUser(t, db, "author", models.RoleRegisteredUser)
	category := &models.Category{Name: "News"}
	require.NoError(t, db.Create(category).Error)

	post := &models.Post{Title: "in category", Content: "c", UserID: author.ID, CategoryID: &category.ID}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "c", UserID: author.ID, PostID: post.ID}).Error)
	free := seedPost(t, db, author.ID, "uncategorized")

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.Delete(ctx, category.ID))

	_, err := repo.GetByID(ctx, category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	postRepo := NewPostRepository(db)
	_, err = postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = postRepo.GetByID(ctx, free.ID)
	require.NoError(t, err)
}

func TestCommentAndLikeWritesInvalidateCachedPost(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	author := seedUser(t, db, "author", models.RoleRegisteredUser)
	post := seedPost(t, db, author.ID, "cached")

	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	likeRepo := NewLikeRepository(db)

	// Prime the cache with zero counts.
	got, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.CommentsCount)

	comment := &models.Comment{Content: "c", UserID: author.ID, PostID: post.ID}
	require.NoError(t, commentRepo.Create(ctx, comment))
	require.NoError(t, likeRepo.Create(ctx, &models.Like{UserID: author.ID, PostID: post.ID}))

	// Both writes evicted the cached post, so the counts are current.
	got, err = postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCount)
	assert.Equal(t, 1, got.LikesCount)

	require.NoError(t, commentRepo.Delete(ctx, comment.ID))

	got, err = postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)
	assert.Equal(t, 1, got.LikesCount)

	like, err := likeRepo.GetByUserAndPost(ctx, author.ID, post.ID)
	require.NoError(t, err)
	require.NotNil(t, like)
	require.NoError(t, likeRepo.Delete(ctx, like.ID))

	got, err = postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
}

func TestGetByEmailMissingReturnsNil(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "missing@x.dev")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestListPostsPagination(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := seedUser(t, db, "author", models.RoleRegisteredUser)
	for i := 0; i < 5; i++ {
		seedPost(t, db, author.ID, fmt.Sprintf("post %d", i))
	}

	repo := NewPostRepository(db)
	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}
