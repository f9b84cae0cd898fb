// Package main provides role management utilities for Gotham Post.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"gothampost/internal/config"
	"gothampost/internal/database"
	"gothampost/internal/models"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin promote <user_id>          - Promote user to Admin")
		fmt.Println("  go run ./cmd/admin set-role <user_id> <role>  - Assign a specific role")
		fmt.Println("  go run ./cmd/admin list-admins                - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin promote <user_id>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.RoleAdmin)

	case "set-role":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run ./cmd/admin set-role <user_id> <role>")
			os.Exit(1)
		}
		role, ok := models.ParseRole(os.Args[3])
		if !ok {
			log.Fatalf("Unknown role %q (expected Admin, RegisteredUser, or Reader)", os.Args[3])
		}
		setRole(db, os.Args[2], role)

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setRole(db *gorm.DB, idArg string, role models.UserRole) {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		log.Fatalf("Invalid user id %q", idArg)
	}

	var user models.User
	if err := db.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("User %d not found", id)
		}
		log.Fatalf("Failed to load user: %v", err)
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	fmt.Printf("User %d (%s) is now %s\n", user.ID, user.Username, user.Role)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to list admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found.")
		return
	}

	fmt.Println("Admins:")
	for _, a := range admins {
		fmt.Printf("  %d  %s  %s\n", a.ID, a.Username, a.Email)
	}
}
