// Command main runs the database seeder for Gotham Post.
package main

import (
	"flag"
	"log"

	"gothampost/internal/config"
	"gothampost/internal/database"
	"gothampost/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	categories, err := s.SeedCategories()
	if err != nil {
		log.Fatalf("Category seeding failed: %v", err)
	}
	if err := s.SeedContent(users, categories, *numPosts); err != nil {
		log.Fatalf("Content seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
