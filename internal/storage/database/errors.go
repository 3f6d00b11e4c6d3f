package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
)

// storageErr maps a driver error into the ledger taxonomy: record-not-found
// becomes ErrNotFound, everything else is treated as a transient storage
// failure.
func storageErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.ErrNotFound
	}
	return fmt.Errorf("%w: %v", ledger.ErrStorageUnavailable, err)
}
