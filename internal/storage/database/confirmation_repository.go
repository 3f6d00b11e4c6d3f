package database

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/confirmation"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

// ConfirmationRepository implements ledger.ConfirmationRepository using GORM
type ConfirmationRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewConfirmationRepository creates a new confirmation repository
func NewConfirmationRepository(db *gorm.DB) *ConfirmationRepository {
	return &ConfirmationRepository{
		db:  db,
		log: logger.Repository("confirmation"),
	}
}

func (r *ConfirmationRepository) Create(c *confirmation.Confirmation) error {
	if err := r.db.Create(c).Error; err != nil {
		r.log.Error("failed to create confirmation", "error", err)
		return storageErr(err)
	}

	r.log.Info("confirmation created", "confirmation_id", c.ID, "name", c.Name)
	return nil
}

func (r *ConfirmationRepository) GetAll() ([]*confirmation.Confirmation, error) {
	var confirmations []*confirmation.Confirmation
	if err := r.db.Order("created_at DESC").Find(&confirmations).Error; err != nil {
		r.log.Error("failed to retrieve confirmations", "error", err)
		return nil, storageErr(err)
	}

	return confirmations, nil
}

func (r *ConfirmationRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&confirmation.Confirmation{}, "id = ?", id)
	if res.Error != nil {
		r.log.Error("failed to delete confirmation", "confirmation_id", id, "error", res.Error)
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}

	r.log.Info("confirmation deleted", "confirmation_id", id)
	return nil
}
