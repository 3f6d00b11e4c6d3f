package contribution

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucasraugi/presentes-api/internal/domain/gift"
)

// AnonymousGuest is recorded when a guest contributes without giving a name.
const AnonymousGuest = "Anônimo"

// Contribution records a guest's purchase of quotas on a gift. Amount is a
// snapshot of shares times the gift's share price at purchase time and is
// never recomputed from the gift afterwards.
type Contribution struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	GiftID    uuid.UUID       `json:"gift_id" gorm:"type:uuid;not null;index"`
	Gift      gift.Gift       `json:"gift,omitempty" gorm:"foreignKey:GiftID"`
	GuestName string          `json:"guest_name"`
	Shares    int             `json:"shares" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName overrides the table name used by GORM
func (Contribution) TableName() string {
	return "contributions"
}

// BeforeCreate sets a UUID before creating the record
func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// New creates a contribution for the given gift. A blank guest name falls
// back to the anonymous sentinel.
func New(giftID uuid.UUID, guestName string, shares int, amount decimal.Decimal) *Contribution {
	if guestName == "" {
		guestName = AnonymousGuest
	}

	return &Contribution{
		ID:        uuid.New(),
		GiftID:    giftID,
		GuestName: guestName,
		Shares:    shares,
		Amount:    amount,
	}
}

// Validate checks if the contribution data is valid
func (c *Contribution) Validate() error {
	if c.GiftID == uuid.Nil {
		return fmt.Errorf("gift_id is required")
	}
	if c.Shares < 1 {
		return fmt.Errorf("shares must be at least 1")
	}
	if c.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}
