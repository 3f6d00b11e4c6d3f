package database

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

// ContributionRepository implements ledger.ContributionRepository using GORM
type ContributionRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{
		db:  db,
		log: logger.Repository("contribution"),
	}
}

// Claim decrements the gift's remaining shares and inserts the contribution
// as one transaction. The decrement is a single conditional UPDATE guarded
// by `remaining_shares >= shares`, so two concurrent claims can never both
// succeed past the remaining count.
func (r *ContributionRepository) Claim(giftID uuid.UUID, guestName string, shares int) (*contribution.Contribution, error) {
	r.log.Debug("claiming shares", "gift_id", giftID, "shares", shares)

	var created *contribution.Contribution

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&gift.Gift{}).
			Where("id = ? AND remaining_shares >= ?", giftID, shares).
			UpdateColumn("remaining_shares", gorm.Expr("remaining_shares - ?", shares))
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			// Distinguish a missing gift from an exhausted one.
			var count int64
			if err := tx.Model(&gift.Gift{}).Where("id = ?", giftID).Count(&count).Error; err != nil {
				return storageErr(err)
			}
			if count == 0 {
				return ledger.ErrNotFound
			}
			return ledger.ErrInsufficientQuota
		}

		var g gift.Gift
		if err := tx.First(&g, "id = ?", giftID).Error; err != nil {
			return storageErr(err)
		}

		amount := g.ShareAmount.Mul(decimal.NewFromInt(int64(shares)))
		c := contribution.New(giftID, guestName, shares, amount)
		if err := tx.Create(c).Error; err != nil {
			return storageErr(err)
		}

		c.Gift = g
		created = c
		return nil
	})
	if err != nil {
		r.log.Debug("claim rejected", "gift_id", giftID, "shares", shares, "reason", err)
		return nil, err
	}

	r.log.Info("shares claimed", "contribution_id", created.ID, "gift_id", giftID, "shares", shares, "amount", created.Amount)
	return created, nil
}

func (r *ContributionRepository) GetByID(id uuid.UUID) (*contribution.Contribution, error) {
	var c contribution.Contribution
	if err := r.db.Preload("Gift").First(&c, "id = ?", id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			r.log.Error("failed to retrieve contribution", "contribution_id", id, "error", err)
		}
		return nil, storageErr(err)
	}

	return &c, nil
}

func (r *ContributionRepository) GetAll() ([]*contribution.Contribution, error) {
	var contributions []*contribution.Contribution
	if err := r.db.Preload("Gift").Order("created_at DESC").Find(&contributions).Error; err != nil {
		r.log.Error("failed to retrieve contributions", "error", err)
		return nil, storageErr(err)
	}

	r.log.Debug("contributions retrieved", "count", len(contributions))
	return contributions, nil
}

// Update persists the edited fields and applies shareDelta to the owning
// gift's remaining counter in the same transaction. The counter update is
// conditional so the result can never leave the [0, total_shares] range.
func (r *ContributionRepository) Update(c *contribution.Contribution, shareDelta int) error {
	r.log.Debug("updating contribution", "contribution_id", c.ID, "share_delta", shareDelta)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if shareDelta != 0 {
			res := tx.Model(&gift.Gift{}).
				Where("id = ? AND remaining_shares + ? >= 0 AND remaining_shares + ? <= total_shares",
					c.GiftID, shareDelta, shareDelta).
				UpdateColumn("remaining_shares", gorm.Expr("remaining_shares + ?", shareDelta))
			if res.Error != nil {
				return storageErr(res.Error)
			}
			if res.RowsAffected == 0 {
				var g gift.Gift
				if err := tx.First(&g, "id = ?", c.GiftID).Error; err != nil {
					return storageErr(err)
				}
				if g.RemainingShares+shareDelta < 0 {
					return ledger.ErrInsufficientQuota
				}
				return ledger.ErrInvalidInput
			}
		}

		res := tx.Model(&contribution.Contribution{}).Where("id = ?", c.ID).Updates(map[string]any{
			"guest_name": c.GuestName,
			"shares":     c.Shares,
			"amount":     c.Amount,
		})
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ledger.ErrNotFound
		}
		return nil
	})
	if err != nil {
		r.log.Debug("contribution update rejected", "contribution_id", c.ID, "reason", err)
		return err
	}

	r.log.Info("contribution updated", "contribution_id", c.ID, "share_delta", shareDelta)
	return nil
}

// Delete removes the contribution and restores its shares to the owning
// gift in the same transaction.
func (r *ContributionRepository) Delete(id uuid.UUID) error {
	r.log.Debug("deleting contribution", "contribution_id", id)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var c contribution.Contribution
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return storageErr(err)
		}

		if err := tx.Model(&gift.Gift{}).
			Where("id = ?", c.GiftID).
			UpdateColumn("remaining_shares", gorm.Expr("remaining_shares + ?", c.Shares)).Error; err != nil {
			return storageErr(err)
		}

		if err := tx.Delete(&contribution.Contribution{}, "id = ?", id).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		r.log.Debug("contribution deletion failed", "contribution_id", id, "reason", err)
		return err
	}

	r.log.Info("contribution deleted, shares restored", "contribution_id", id)
	return nil
}
