package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/surebet-tracker/internal/database"
	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth(ctx context.Context) error {
	return database.HealthCheck(ctx, s.db)
}

// CheckVersion reports the application version and the database schema state.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	dbVersion, pending, err := database.Version(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to get database version: %w", err)
	}

	info := model.VersionInfo{
		AppVersion:      version.Version,
		DbVersion:       dbVersion,
		MigrationNeeded: pending,
	}
	if pending {
		msg := "database schema is behind; restart the server to apply pending migrations"
		info.MigrationMessage = &msg
	}
	return info, nil
}
