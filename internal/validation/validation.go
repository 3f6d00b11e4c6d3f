package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateRequired checks that a field is not blank
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string field
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidateUUID parses a route or payload field as a UUID
func ValidateUUID(value, fieldName string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.New(fieldName + " must be a valid UUID")
	}
	return id, nil
}

// ValidatePositiveAmount checks that a monetary field is greater than zero
func ValidatePositiveAmount(value decimal.Decimal, fieldName string) error {
	if !value.IsPositive() {
		return errors.New(fieldName + " must be greater than zero")
	}
	return nil
}

// GiftValidation contains gift-specific validations
type GiftValidation struct{}

// ValidateGiftName validates a gift's display name
func (v GiftValidation) ValidateGiftName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	return ValidateMaxLength(name, 120, "name")
}

// ValidateAmounts validates a gift's pricing fields
func (v GiftValidation) ValidateAmounts(totalAmount, shareAmount decimal.Decimal) error {
	if err := ValidatePositiveAmount(totalAmount, "total_amount"); err != nil {
		return err
	}
	if err := ValidatePositiveAmount(shareAmount, "share_amount"); err != nil {
		return err
	}
	if shareAmount.GreaterThan(totalAmount) {
		return errors.New("share_amount must not exceed total_amount")
	}
	return nil
}

// ContributionValidation contains contribution-specific validations
type ContributionValidation struct{}

// ValidateGuestName validates a contributor's display name
func (v ContributionValidation) ValidateGuestName(name string) error {
	return ValidateMaxLength(name, 120, "guest_name")
}

// ValidateShares validates the number of quotas requested
func (v ContributionValidation) ValidateShares(shares int) error {
	if shares < 1 {
		return errors.New("shares must be at least 1")
	}
	return nil
}
