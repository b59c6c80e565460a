package database

import (
	"log"
	"os"

	"clampacked-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the settings database. DATABASE_URL selects Postgres; without
// it a local SQLite file is used, which is plenty for the single row this
// service persists.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "clampacked.db"
	}
	log.Printf("DATABASE_URL not set, using SQLite at %s", path)
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// Migrate creates the settings table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Setting{})
}
