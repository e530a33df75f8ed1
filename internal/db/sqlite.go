package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ggrange/cuistot/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	if err := seedDefaultCategories(database); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	return database, nil
}

func seedDefaultCategories(database *gorm.DB) error {
	for _, name := range models.DefaultCategories() {
		if err := database.Exec(
			`INSERT INTO categories(name) VALUES (?) ON CONFLICT(name) DO NOTHING`,
			name,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
