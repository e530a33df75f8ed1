package api

import (
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, location *time.Location, uploadDir string) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	handler := &Handler{
		db:             database,
		location:       location,
		uploadDir:      uploadDir,
		maxUploadBytes: defaultMaxUploadBytes,
	}
	return handler.withDependencies(database), nil
}
