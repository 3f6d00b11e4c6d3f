package gift

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Gift represents a registry item that guests fund in fixed-price quotas.
// TotalShares is fixed at creation; RemainingShares moves as contributions
// are recorded and reverted.
type Gift struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string          `json:"name" gorm:"not null"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	ShareAmount     decimal.Decimal `json:"share_amount" gorm:"type:decimal(12,2);not null"`
	TotalShares     int             `json:"total_shares" gorm:"not null"`
	RemainingShares int             `json:"remaining_shares" gorm:"not null"`
	ImageURL        string          `json:"image_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Gift) TableName() string {
	return "gifts"
}

// BeforeCreate sets a UUID before creating the record
func (g *Gift) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// New creates a gift with its share count derived from the total and
// per-quota prices. The share count is the floor of total/share.
func New(name string, totalAmount, shareAmount decimal.Decimal, imageURL string) *Gift {
	totalShares := 0
	if shareAmount.IsPositive() {
		totalShares = int(totalAmount.Div(shareAmount).IntPart())
	}

	return &Gift{
		ID:              uuid.New(),
		Name:            name,
		TotalAmount:     totalAmount,
		ShareAmount:     shareAmount,
		TotalShares:     totalShares,
		RemainingShares: totalShares,
		ImageURL:        imageURL,
	}
}

// Validate checks if the gift data is valid
func (g *Gift) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !g.TotalAmount.IsPositive() {
		return fmt.Errorf("total_amount must be greater than zero")
	}
	if !g.ShareAmount.IsPositive() {
		return fmt.Errorf("share_amount must be greater than zero")
	}
	if g.TotalShares < 1 {
		return fmt.Errorf("share_amount must not exceed total_amount")
	}
	if g.RemainingShares < 0 || g.RemainingShares > g.TotalShares {
		return fmt.Errorf("remaining_shares out of range")
	}
	return nil
}

// IsFullyFunded reports whether every quota of the gift has been claimed.
func (g *Gift) IsFullyFunded() bool {
	return g.RemainingShares == 0
}
