package models

import (
	"time"

	"gorm.io/gorm"
)

// EventLog records notable application events: signups, content creation,
// analyzer fallbacks. Queryable over the API for the owning user's events.
type EventLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"index"`
	Level     string    `json:"level"` // "INFO", "ERROR"
	Event     string    `json:"event"` // "signup", "content.create", "analyzer.fallback", ...
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func MigrateEventLogs(db *gorm.DB) error {
	return db.AutoMigrate(&EventLog{})
}

func LogEvent(db *gorm.DB, userID uint, event, message string) {
	db.Create(&EventLog{
		UserID:  userID,
		Level:   "INFO",
		Event:   event,
		Message: message,
	})
}

func LogEventError(db *gorm.DB, userID uint, event, message string) {
	db.Create(&EventLog{
		UserID:  userID,
		Level:   "ERROR",
		Event:   event,
		Message: message,
	})
}
