// Package seed populates the database with realistic fake data for local
// development and demos.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"gothampost/internal/auth"
	"gothampost/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// seedPassword is the shared password for every seeded account.
const seedPassword = "password123"

var defaultCategories = []models.Category{
	{Name: "News", Description: "What's happening in Gotham"},
	{Name: "Opinion", Description: "Editorials and hot takes"},
	{Name: "Technology", Description: "Gadgets, gizmos, and grappling hooks"},
	{Name: "Culture", Description: "Arts, food, and city life"},
	{Name: "Sports", Description: "Knights games and more"},
}

// Seeder populates the database with fake users, posts, comments, and likes.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll wipes all seeded tables. Hard deletes, including soft-deleted rows.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Category{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n fake accounts plus one admin. Every account shares the
// seed password so local logins are painless.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@gothampost.dev",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("creating admin: %w", err)
	}

	users := []*models.User{admin}
	for i := 0; i < n; i++ {
		role := models.RoleRegisteredUser
		if i%4 == 0 {
			role = models.RoleReader
		}
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: hashed,
			Role:     role,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users (1 admin)", len(users))
	return users, nil
}

// SeedCategories creates the default category set.
func (s *Seeder) SeedCategories() ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		category := c
		if err := s.db.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("creating category %q: %w", c.Name, err)
		}
		categories = append(categories, &category)
	}
	log.Printf("Seeded %d categories", len(categories))
	return categories, nil
}

// SeedContent creates nPosts fake posts by publishing users, then scatters
// comments and likes across them.
func (s *Seeder) SeedContent(users []*models.User, categories []*models.Category, nPosts int) error {
	var authors []*models.User
	for _, u := range users {
		if u.Role.CanPublish() {
			authors = append(authors, u)
		}
	}
	if len(authors) == 0 {
		return fmt.Errorf("no users can publish")
	}

	posts := make([]*models.Post, 0, nPosts)
	for i := 0; i < nPosts; i++ {
		author := authors[rand.Intn(len(authors))]
		post := &models.Post{
			Title:   gofakeit.Sentence(6),
			Content: gofakeit.Paragraph(3, 5, 12, "\n\n"),
			UserID:  author.ID,
		}
		if len(categories) > 0 && rand.Intn(10) > 1 {
			post.CategoryID = &categories[rand.Intn(len(categories))].ID
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("creating post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	log.Printf("Seeded %d posts", len(posts))

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			author := authors[rand.Intn(len(authors))]
			comment := &models.Comment{
				Content: gofakeit.Sentence(12),
				UserID:  author.ID,
				PostID:  post.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
			comments++
		}

		// Pick distinct likers to respect the one-like-per-user index.
		perm := rand.Perm(len(authors))
		for _, idx := range perm[:rand.Intn(len(authors)/2+1)] {
			like := &models.Like{
				UserID: authors[idx].ID,
				PostID: post.ID,
			}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
			likes++
		}
	}

	log.Printf("Seeded %d comments and %d likes", comments, likes)
	return nil
}
