package confirmation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Confirmation is an attendance confirmation left by a guest.
type Confirmation struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Confirmation) TableName() string {
	return "confirmations"
}

// BeforeCreate sets a UUID before creating the record
func (c *Confirmation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// New creates an attendance confirmation for the given guest name.
func New(name string) *Confirmation {
	return &Confirmation{
		ID:   uuid.New(),
		Name: name,
	}
}

// Validate checks if the confirmation data is valid
func (c *Confirmation) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
