package ledger

import (
	"github.com/google/uuid"

	"github.com/lucasraugi/presentes-api/internal/domain/confirmation"
	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
)

// GiftRepository defines storage access for gifts. Implementations return
// the ledger error taxonomy: ErrNotFound, ErrHasContributions and
// ErrStorageUnavailable.
type GiftRepository interface {
	Create(g *gift.Gift) error
	GetByID(id uuid.UUID) (*gift.Gift, error)
	GetAll() ([]*gift.Gift, error)
	// Delete removes a gift, failing with ErrHasContributions while any
	// contribution still references it.
	Delete(id uuid.UUID) error
	SetImageURL(id uuid.UUID, url string) error
}

// ContributionRepository defines storage access for contributions. The
// mutating methods each run as a single transaction that keeps the owning
// gift's remaining share counter consistent.
type ContributionRepository interface {
	// Claim atomically decrements the gift's remaining shares and inserts
	// the contribution, with the amount snapshotted from the gift's share
	// price. Fails with ErrInsufficientQuota without inserting anything when
	// the gift has fewer shares left than requested.
	Claim(giftID uuid.UUID, guestName string, shares int) (*contribution.Contribution, error)
	GetByID(id uuid.UUID) (*contribution.Contribution, error)
	// GetAll returns contributions newest first with their gifts preloaded.
	GetAll() ([]*contribution.Contribution, error)
	// Update persists the contribution's guest name, shares and amount and
	// applies shareDelta (old shares minus new shares) to the owning gift's
	// remaining counter in the same transaction.
	Update(c *contribution.Contribution, shareDelta int) error
	// Delete removes the contribution and restores its shares to the gift.
	Delete(id uuid.UUID) error
}

// ConfirmationRepository defines storage access for attendance confirmations.
type ConfirmationRepository interface {
	Create(c *confirmation.Confirmation) error
	GetAll() ([]*confirmation.Confirmation, error)
	Delete(id uuid.UUID) error
}
