package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrAmountTooLarge      = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxDescriptionLength  = 255
	MaxCategoryNameLength = 64
	MaxTransactionAmount  = "1000000000000" // 1 trillion
)

// ValidateAmount validates a transaction amount magnitude.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}

// NormalizeDescription trims a description and capitalizes it the way
// the ledger stores it: first letter upper, rest lower.
func NormalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)

	if description == "" {
		return "", ErrEmptyDescription
	}

	if len(description) > MaxDescriptionLength {
		return "", fmt.Errorf("%w: limit is %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}

	runes := []rune(strings.ToLower(description))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes), nil
}

// ValidateCategoryName validates a category name.
func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCategoryName)
	}

	if len(name) > MaxCategoryNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCategoryName, MaxCategoryNameLength)
	}

	return nil
}
