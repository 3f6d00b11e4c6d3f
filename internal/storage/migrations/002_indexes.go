package migrations

import "gorm.io/gorm"

// migration002Up creates query indexes for the contribution listing paths.
// Plain CREATE INDEX syntax works on both PostgreSQL and SQLite.
func migration002Up(db *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_contributions_gift_id ON contributions (gift_id)",
		"CREATE INDEX IF NOT EXISTS idx_contributions_created_at ON contributions (created_at)",
		"CREATE INDEX IF NOT EXISTS idx_confirmations_created_at ON confirmations (created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration002Down drops the query indexes
func migration002Down(db *gorm.DB) error {
	statements := []string{
		"DROP INDEX IF EXISTS idx_contributions_gift_id",
		"DROP INDEX IF EXISTS idx_contributions_created_at",
		"DROP INDEX IF EXISTS idx_confirmations_created_at",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
