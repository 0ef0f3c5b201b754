package config

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-collab.com/task-collab/internal/models"
)

// OpenDatabase opens the sqlite database and migrates the schema. SQLite
// allows a single writer, so the pool is capped at one connection; this
// also keeps ":memory:" databases shared across calls.
func OpenDatabase(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func NewDatabaseClient(dsn string, level logger.LogLevel) *gorm.DB {
	db, err := OpenDatabase(dsn, level)
	if err != nil {
		log.Fatalf("db setup failed: %v", err)
	}
	return db
}
