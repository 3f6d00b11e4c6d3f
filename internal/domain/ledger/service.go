// Package ledger implements the quota ledger: the operations and invariants
// that keep each gift's remaining share counter consistent with the set of
// recorded contributions.
package ledger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
	"github.com/lucasraugi/presentes-api/internal/logger"
)

// Service owns the business rules of the quota ledger. Atomicity of the
// counter updates is delegated to the repositories, which run each mutating
// operation as a single transaction.
type Service struct {
	gifts         GiftRepository
	contributions ContributionRepository
	log           *log.Logger
}

// NewService creates a ledger service over the given repositories.
func NewService(gifts GiftRepository, contributions ContributionRepository) *Service {
	return &Service{
		gifts:         gifts,
		contributions: contributions,
		log:           logger.WithContext("component", "ledger"),
	}
}

// CreateGiftRequest carries the fields needed to register a gift.
type CreateGiftRequest struct {
	Name        string
	TotalAmount decimal.Decimal
	ShareAmount decimal.Decimal
	ImageURL    string
}

// CreateGift registers a gift, deriving its share count from the total and
// per-quota prices.
func (s *Service) CreateGift(req CreateGiftRequest) (*gift.Gift, error) {
	g := gift.New(strings.TrimSpace(req.Name), req.TotalAmount, req.ShareAmount, req.ImageURL)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gifts.Create(g); err != nil {
		return nil, err
	}

	s.log.Info("gift registered", "gift_id", g.ID, "name", g.Name, "total_shares", g.TotalShares)
	return g, nil
}

// GetGift returns a single gift by id.
func (s *Service) GetGift(id uuid.UUID) (*gift.Gift, error) {
	return s.gifts.GetByID(id)
}

// ListGifts returns all registered gifts.
func (s *Service) ListGifts() ([]*gift.Gift, error) {
	return s.gifts.GetAll()
}

// DeleteGift removes a gift. Gifts that already received contributions are
// protected and fail with ErrHasContributions.
func (s *Service) DeleteGift(id uuid.UUID) error {
	if err := s.gifts.Delete(id); err != nil {
		return err
	}

	s.log.Info("gift deleted", "gift_id", id)
	return nil
}

// SetGiftImage stores the display image URL on a gift.
func (s *Service) SetGiftImage(id uuid.UUID, url string) error {
	return s.gifts.SetImageURL(id, url)
}

// RecordContribution claims shares on a gift for a guest. The decrement of
// the gift's remaining counter and the contribution insert happen as one
// atomic unit; a request for more shares than remain fails with
// ErrInsufficientQuota and changes nothing.
func (s *Service) RecordContribution(giftID uuid.UUID, guestName string, shares int) (*contribution.Contribution, error) {
	if shares < 1 {
		return nil, fmt.Errorf("%w: shares must be at least 1", ErrInvalidInput)
	}

	c, err := s.contributions.Claim(giftID, strings.TrimSpace(guestName), shares)
	if err != nil {
		return nil, err
	}

	s.log.Info("contribution recorded",
		"contribution_id", c.ID, "gift_id", giftID, "guest", c.GuestName,
		"shares", c.Shares, "amount", c.Amount)
	return c, nil
}

// EditContributionRequest carries the admin-editable contribution fields.
// Nil fields are left unchanged.
type EditContributionRequest struct {
	GuestName *string
	Shares    *int
	Amount    *decimal.Decimal
}

// EditContribution updates a contribution. Changing the share count
// reconciles the owning gift's remaining counter by the difference, in the
// same transaction, and recomputes the amount snapshot from the gift's share
// price unless an explicit amount override is given.
func (s *Service) EditContribution(id uuid.UUID, req EditContributionRequest) (*contribution.Contribution, error) {
	existing, err := s.contributions.GetByID(id)
	if err != nil {
		return nil, err
	}

	shareDelta := 0

	if req.GuestName != nil {
		name := strings.TrimSpace(*req.GuestName)
		if name == "" {
			name = contribution.AnonymousGuest
		}
		existing.GuestName = name
	}

	if req.Shares != nil && *req.Shares != existing.Shares {
		if *req.Shares < 1 {
			return nil, fmt.Errorf("%w: shares must be at least 1", ErrInvalidInput)
		}
		shareDelta = existing.Shares - *req.Shares
		existing.Shares = *req.Shares
		existing.Amount = existing.Gift.ShareAmount.Mul(decimal.NewFromInt(int64(*req.Shares)))
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
		}
		existing.Amount = *req.Amount
	}

	if err := s.contributions.Update(existing, shareDelta); err != nil {
		return nil, err
	}

	s.log.Info("contribution updated", "contribution_id", id, "share_delta", shareDelta)
	return existing, nil
}

// DeleteContribution removes a contribution, restoring its shares to the
// owning gift in the same transaction.
func (s *Service) DeleteContribution(id uuid.UUID) error {
	if err := s.contributions.Delete(id); err != nil {
		return err
	}

	s.log.Info("contribution deleted", "contribution_id", id)
	return nil
}

// ListContributions returns all contributions newest first, each with its
// gift preloaded for display.
func (s *Service) ListContributions() ([]*contribution.Contribution, error) {
	return s.contributions.GetAll()
}
