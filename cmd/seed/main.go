package main

import (
	"log"
	"os"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/model"
	"se-trainer-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Development User...")

	devUser := model.User{
		Email:            "dev@localhost",
		FullName:         "Dev User",
		Plan:             constant.PlanFree,
		PlanStatus:       constant.PlanStatusActive,
		MonthlyTurnLimit: constant.DefaultMonthlyTurnLimit[constant.PlanFree],
	}

	var existing model.User
	if err := db.Where("email = ?", devUser.Email).First(&existing).Error; err == nil {
		log.Printf("User '%s' already exists (id=%s), skipping...", devUser.Email, existing.Id)
	} else if err := db.Create(&devUser).Error; err != nil {
		log.Printf("Error creating user '%s': %v", devUser.Email, err)
	} else {
		log.Printf("Created user: %s (id=%s)", devUser.Email, devUser.Id)
	}

	log.Println("Seeding Public Knowledge Base Cards...")
	SeedPublicCards(db)
}
