package models

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database connection.
func InitDB() (*gorm.DB, error) {
	// DATABASE_URL selects the production database
	databaseURL := os.Getenv("DATABASE_URL")

	if databaseURL != "" {
		// PostgreSQL for production
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	// SQLite for development
	db, err := gorm.Open(sqlite.Open("trackpro.db"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
