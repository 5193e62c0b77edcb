package database

import (
	"log"
	"os"

	"github.com/shivangi1713/The-Intelligent-Content-API/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database selected by the environment and runs migrations.
// DB_DRIVER=postgres uses DB_DSN (or DATABASE_URL); anything else is SQLite
// at DB_PATH.
func Connect() {
	driver := os.Getenv("DB_DRIVER")
	var dialector gorm.Dialector

	if driver == "postgres" {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = os.Getenv("DATABASE_URL")
		}
		if dsn == "" {
			log.Fatal("DB_DSN or DATABASE_URL is required for postgres driver")
		}
		dialector = postgres.Open(dsn)
		log.Println("Connecting to PostgreSQL...")
	} else {
		// Default to SQLite
		dsn := os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "content.db"
		}
		dialector = sqlite.Open(dsn)
		log.Println("Connecting to SQLite...")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	log.Println("Connected to Database successfully")

	log.Println("Running Auto Migrations...")
	if err := migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	DB = db
}

func migrate(db *gorm.DB) error {
	if err := models.MigrateUsers(db); err != nil {
		return err
	}
	if err := models.MigrateContents(db); err != nil {
		return err
	}
	return models.MigrateEventLogs(db)
}
