package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	valid := decimal.NewFromFloat(30.50)
	if err := ValidateAmount(valid); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}

	max := decimal.RequireFromString(MaxTransactionAmount)
	if err := ValidateAmount(max); err != nil {
		t.Fatalf("expected maximum amount to pass, got %v", err)
	}

	if err := ValidateAmount(max.Add(decimal.NewFromInt(1))); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestNormalizeDescription(t *testing.T) {
	t.Parallel()

	t.Run("capitalizes first letter", func(t *testing.T) {
		got, err := NormalizeDescription("lunch")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "Lunch" {
			t.Fatalf("expected %q, got %q", "Lunch", got)
		}
	})

	t.Run("lowers the rest", func(t *testing.T) {
		got, err := NormalizeDescription("GROCERY Shopping")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "Grocery shopping" {
			t.Fatalf("expected %q, got %q", "Grocery shopping", got)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		got, err := NormalizeDescription("  taxi ride  ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "Taxi ride" {
			t.Fatalf("expected %q, got %q", "Taxi ride", got)
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := NormalizeDescription("   "); !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("expected ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("too long rejected", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxDescriptionLength+1)
		if _, err := NormalizeDescription(tooLong); !errors.Is(err, ErrDescriptionTooLong) {
			t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
		}
	})
}

func TestValidateCategoryName(t *testing.T) {
	t.Parallel()

	if err := ValidateCategoryName("Groceries"); err != nil {
		t.Fatalf("expected valid name, got %v", err)
	}

	if err := ValidateCategoryName("   "); !errors.Is(err, ErrInvalidCategoryName) {
		t.Fatalf("expected ErrInvalidCategoryName for empty name, got %v", err)
	}

	tooLong := strings.Repeat("x", MaxCategoryNameLength+1)
	if err := ValidateCategoryName(tooLong); !errors.Is(err, ErrInvalidCategoryName) {
		t.Fatalf("expected ErrInvalidCategoryName for long name, got %v", err)
	}
}
