package migrations

import (
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/confirmation"
	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
)

// AllModels returns every persisted model in dependency order.
func AllModels() []any {
	return []any{
		&gift.Gift{},
		&contribution.Contribution{},
		&confirmation.Confirmation{},
	}
}

// migration001Up creates all core tables using GORM AutoMigrate
func migration001Up(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// migration001Down drops all core tables
func migration001Down(db *gorm.DB) error {
	tables := []string{
		"contributions",
		"confirmations",
		"gifts",
	}

	for _, table := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			return err
		}
	}

	return nil
}
