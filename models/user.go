package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Created at signup, immutable afterwards.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt      time.Time `json:"created_at"`

	Contents []Content `gorm:"foreignKey:UserID" json:"-"`
}

// MigrateUsers migrates the table
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
