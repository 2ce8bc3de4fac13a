package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/campusvoice/backend/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	database, err := db.Open()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	log.Println("Database migrations completed successfully")
}
