package main

import (
	"context"
	"log"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/models"
	"github.com/shivangi1713/The-Intelligent-Content-API/services/analyzer"

	"github.com/joho/godotenv"
)

// Backfills summary and sentiment for rows that predate the analyzer or
// were saved while it was misconfigured.
func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using defaults/env vars")
	}

	database.Connect()
	manager := analyzer.NewManager()

	var contents []models.Content
	if err := database.DB.Where("summary = '' OR sentiment = ''").Find(&contents).Error; err != nil {
		log.Fatal("Failed to load contents: ", err)
	}

	log.Printf("Reanalyzing %d contents...", len(contents))

	updated := 0
	for _, content := range contents {
		result, source := manager.Analyze(context.Background(), content.Text)

		content.Summary = result.Summary
		content.Sentiment = result.Sentiment
		if err := database.DB.Save(&content).Error; err != nil {
			log.Printf("Failed to update content %d: %v", content.ID, err)
			continue
		}
		log.Printf("Content %d analyzed via %s", content.ID, source)
		updated++
	}

	log.Printf("Done. Updated %d/%d contents.", updated, len(contents))
}
