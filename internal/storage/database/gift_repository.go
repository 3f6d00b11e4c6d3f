package database

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

// GiftRepository implements ledger.GiftRepository using GORM
type GiftRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewGiftRepository creates a new gift repository
func NewGiftRepository(db *gorm.DB) *GiftRepository {
	return &GiftRepository{
		db:  db,
		log: logger.Repository("gift"),
	}
}

func (r *GiftRepository) Create(g *gift.Gift) error {
	r.log.Debug("creating gift", "gift_id", g.ID, "name", g.Name)

	if err := r.db.Create(g).Error; err != nil {
		r.log.Error("failed to create gift", "error", err, "gift_id", g.ID)
		return storageErr(err)
	}

	r.log.Info("gift created", "gift_id", g.ID, "name", g.Name, "total_shares", g.TotalShares)
	return nil
}

func (r *GiftRepository) GetByID(id uuid.UUID) (*gift.Gift, error) {
	var g gift.Gift
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			r.log.Error("failed to retrieve gift", "gift_id", id, "error", err)
		}
		return nil, storageErr(err)
	}

	return &g, nil
}

func (r *GiftRepository) GetAll() ([]*gift.Gift, error) {
	var gifts []*gift.Gift
	if err := r.db.Order("created_at ASC").Find(&gifts).Error; err != nil {
		r.log.Error("failed to retrieve gifts", "error", err)
		return nil, storageErr(err)
	}

	r.log.Debug("gifts retrieved", "count", len(gifts))
	return gifts, nil
}

// Delete removes a gift inside a transaction, refusing while contributions
// still reference it.
func (r *GiftRepository) Delete(id uuid.UUID) error {
	r.log.Debug("deleting gift", "gift_id", id)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&contribution.Contribution{}).Where("gift_id = ?", id).Count(&count).Error; err != nil {
			return storageErr(err)
		}
		if count > 0 {
			return ledger.ErrHasContributions
		}

		res := tx.Delete(&gift.Gift{}, "id = ?", id)
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ledger.ErrNotFound
		}
		return nil
	})
	if err != nil {
		r.log.Debug("gift deletion refused", "gift_id", id, "reason", err)
		return err
	}

	r.log.Info("gift deleted", "gift_id", id)
	return nil
}

func (r *GiftRepository) SetImageURL(id uuid.UUID, url string) error {
	res := r.db.Model(&gift.Gift{}).Where("id = ?", id).Update("image_url", url)
	if res.Error != nil {
		r.log.Error("failed to set gift image", "gift_id", id, "error", res.Error)
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}

	r.log.Info("gift image updated", "gift_id", id)
	return nil
}
