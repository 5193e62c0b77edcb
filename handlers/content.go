package handlers

import (
	"fmt"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/models"
	"github.com/shivangi1713/The-Intelligent-Content-API/services/analyzer"

	"github.com/gofiber/fiber/v2"
)

// CreateContent stores a text submission annotated with its analysis
func CreateContent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		Text string `json:"text"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid input"})
	}

	if input.Text == "" {
		return c.Status(400).JSON(fiber.Map{"detail": "Text is required."})
	}

	// One analysis attempt per submission; provider failures resolve to
	// the local heuristic and never fail the request.
	result, source := Analyzer.Analyze(c.UserContext(), input.Text)

	content := models.Content{
		UserID:    userID,
		Text:      input.Text,
		Summary:   result.Summary,
		Sentiment: result.Sentiment,
	}

	if err := database.DB.Create(&content).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Failed to save content"})
	}

	if source == analyzer.FallbackSource {
		models.LogEvent(database.DB, userID, "analyzer.fallback", fmt.Sprintf("content %d analyzed locally", content.ID))
	}
	models.LogEvent(database.DB, userID, "content.create", fmt.Sprintf("content %d via %s", content.ID, source))

	return c.Status(201).JSON(content)
}

// ListContents returns the caller's submissions, newest first
func ListContents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	contents := []models.Content{}
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&contents).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Database error"})
	}

	return c.JSON(contents)
}

// GetContent returns a single submission, scoped to the caller
func GetContent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "Content not found."})
	}

	var content models.Content
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&content).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "Content not found."})
	}

	return c.JSON(content)
}

// DeleteContent removes a submission, scoped to the caller
func DeleteContent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "Content not found."})
	}

	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Content{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Database error"})
	}

	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"detail": "Content not found."})
	}

	return c.SendStatus(204)
}

// ListEvents returns the caller's event log, newest first
func ListEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	events := []models.EventLog{}
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(100).Find(&events).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Database error"})
	}

	return c.JSON(events)
}
