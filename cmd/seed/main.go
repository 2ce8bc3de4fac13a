package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusvoice/backend/internal/db"
	"github.com/campusvoice/backend/internal/models"
	"github.com/campusvoice/backend/internal/storage"
)

// Default categories match the classifier's keyword tables so newly filed
// complaints land on a registered category.
var defaultCategories = []string{
	"Academic", "Infrastructure", "Hostel", "Transport", "Faculty", "Other",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	database, err := db.Open()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	store := storage.NewGormStore(database)

	if err := seedAdmin(store); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedCategories(store); err != nil {
		log.Fatalf("seed categories: %v", err)
	}
	log.Println("Database seeding completed successfully")
}

func seedAdmin(store storage.Store) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	err = store.CreateUser(&admin)
	if errors.Is(err, storage.ErrDuplicateEmail) {
		log.Printf("admin %s already exists, skipping", email)
		return nil
	}
	if err == nil {
		log.Printf("created admin %s", email)
	}
	return err
}

func seedCategories(store storage.Store) error {
	for _, name := range defaultCategories {
		err := store.CreateCategory(&models.Category{Name: name})
		if errors.Is(err, storage.ErrDuplicateCategory) {
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("created category %s", name)
	}
	return nil
}
