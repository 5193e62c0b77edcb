package main

import (
	"log"
	"os"

	"github.com/shivangi1713/The-Intelligent-Content-API/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Copies a SQLite database into PostgreSQL, for promoting a dev instance.
func main() {
	// 1. Load defaults or env
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using defaults/env vars")
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "../../content.db"
	}

	pgDSN := os.Getenv("POSTGRES_DSN")
	if pgDSN == "" {
		log.Fatal("POSTGRES_DSN is required (e.g., host=localhost user=content password=content dbname=content port=5432 sslmode=disable)")
	}

	// 2. Connect via GORM
	log.Printf("Opening SQLite: %s\n", sqlitePath)
	srcDB, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open SQLite:", err)
	}

	log.Println("Opening PostgreSQL...")
	dstDB, err := gorm.Open(postgres.Open(pgDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open PostgreSQL:", err)
	}

	// 3. Migrate Schema (Ensure tables exist)
	log.Println("Migrating Target Schema...")
	if err := models.MigrateUsers(dstDB); err != nil {
		log.Fatal("Schema migration failed:", err)
	}
	if err := models.MigrateContents(dstDB); err != nil {
		log.Fatal("Schema migration failed:", err)
	}
	if err := models.MigrateEventLogs(dstDB); err != nil {
		log.Fatal("Schema migration failed:", err)
	}

	// 4. Copy Data. Users first so content foreign keys resolve.
	copyTable(srcDB, dstDB, &[]models.User{}, "Users")
	copyTable(srcDB, dstDB, &[]models.Content{}, "Contents")
	copyTable(srcDB, dstDB, &[]models.EventLog{}, "EventLogs")

	log.Println("Migration Complete!")
}

func copyTable(src *gorm.DB, dst *gorm.DB, model interface{}, name string) {
	log.Printf("Copying %s...", name)

	if err := src.Find(model).Error; err != nil {
		log.Printf("Error reading %s: %v\n", name, err)
		return
	}

	if err := dst.Create(model).Error; err != nil {
		log.Printf("Warning inserting %s (might strictly be duplicates): %v\n", name, err)
	} else {
		log.Printf("Successfully copied %s\n", name)
	}
}
