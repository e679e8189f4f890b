package migration

import (
	"gorm.io/gorm"

	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/model"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates or updates all tables to match the current models
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Holding{},
		&model.History{},
	); err != nil {
		m.logger.Error("Failed to migrate database schema", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"tables": []string{
			model.User{}.TableName(),
			model.Holding{}.TableName(),
			model.History{}.TableName(),
		},
	})
	return nil
}
