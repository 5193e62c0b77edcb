package models

import (
	"time"

	"gorm.io/gorm"
)

// Sentiment labels stored on a Content row.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// Content is a text submission owned by a single user, annotated once at
// creation time with a summary and a sentiment label.
type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Summary   string    `gorm:"type:text" json:"summary"`
	Sentiment string    `json:"sentiment"` // Positive, Negative or Neutral
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MigrateContents migrates the table
func MigrateContents(db *gorm.DB) error {
	return db.AutoMigrate(&Content{})
}
