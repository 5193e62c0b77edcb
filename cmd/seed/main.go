package main

import (
	"context"
	"log"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/models"
	"github.com/shivangi1713/The-Intelligent-Content-API/seeds"
	"github.com/shivangi1713/The-Intelligent-Content-API/services/analyzer"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo user with analyzed sample content. Safe to re-run.
func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using defaults/env vars")
	}

	database.Connect()
	manager := analyzer.NewManager()

	var user models.User
	if err := database.DB.Where("email = ?", seeds.DemoEmail).First(&user).Error; err != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seeds.DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password: ", err)
		}
		user = models.User{Email: seeds.DemoEmail, HashedPassword: string(hashedPassword)}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create demo user: ", err)
		}
		log.Printf("Created demo user %s (id=%d)", user.Email, user.ID)
	} else {
		log.Printf("Demo user %s already exists (id=%d)", user.Email, user.ID)
	}

	for _, text := range seeds.SampleTexts {
		var count int64
		database.DB.Model(&models.Content{}).Where("user_id = ? AND text = ?", user.ID, text).Count(&count)
		if count > 0 {
			continue
		}

		result, source := manager.Analyze(context.Background(), text)
		content := models.Content{
			UserID:    user.ID,
			Text:      text,
			Summary:   result.Summary,
			Sentiment: result.Sentiment,
		}
		if err := database.DB.Create(&content).Error; err != nil {
			log.Printf("Failed to seed content: %v", err)
			continue
		}
		log.Printf("Seeded content %d (%s via %s)", content.ID, content.Sentiment, source)
	}

	log.Println("Seeding complete.")
}
