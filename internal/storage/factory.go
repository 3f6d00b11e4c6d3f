// Package storage selects and opens the persistence backend. Two
// interchangeable backends exist behind the same gorm interface: an external
// PostgreSQL server and an embedded SQLite file, chosen by configuration.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/config"
	"github.com/lucasraugi/presentes-api/internal/storage/database"
)

// Type represents the storage backend type
type Type string

const (
	// TypePostgres represents an external PostgreSQL backend
	TypePostgres Type = "postgres"
	// TypeSQLite represents the embedded SQLite backend
	TypeSQLite Type = "sqlite"
)

// SupportedTypes returns the list of supported storage backends
func SupportedTypes() []Type {
	return []Type{TypePostgres, TypeSQLite}
}

// ValidateType validates that a storage type is supported
func ValidateType(storageType string) (Type, error) {
	st := Type(storageType)

	for _, supported := range SupportedTypes() {
		if st == supported {
			return st, nil
		}
	}

	return "", fmt.Errorf("unsupported storage type: %s (supported: %v)", storageType, SupportedTypes())
}

// Dialector builds the gorm dialector for the configured backend.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	storageType, err := ValidateType(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	switch storageType {
	case TypePostgres:
		return postgres.Open(cfg.GetDatabaseURL()), nil
	case TypeSQLite:
		if dir := filepath.Dir(cfg.DB.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.DB.Path), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}

// Open connects to the configured backend and runs pending migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(dialector, cfg)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
