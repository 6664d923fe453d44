package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
)

// BalanceRepository defines data access for the stored balance.
type BalanceRepository interface {
	// Load returns the stored balance. found is false when no usable
	// balance exists yet (missing or unreadable state).
	Load(ctx context.Context) (balance decimal.Decimal, found bool, err error)
	Save(ctx context.Context, balance decimal.Decimal) error
	// Wipe clears the stored balance so the next Load reports it absent.
	Wipe(ctx context.Context) error
}

// TransactionRepository defines data access for the transaction log.
type TransactionRepository interface {
	// Load returns the stored log in chronological order. Missing or
	// unreadable state yields an empty log.
	Load(ctx context.Context) ([]domain.Transaction, error)
	// Save replaces the stored log with the given one.
	Save(ctx context.Context, transactions []domain.Transaction) error
	// Wipe clears the stored log.
	Wipe(ctx context.Context) error
}

// CategoryRepository defines data access for the category registry.
type CategoryRepository interface {
	// Load returns the stored registry. found is false when no usable
	// registry exists yet (missing or unreadable state).
	Load(ctx context.Context) (categories []domain.Category, found bool, err error)
	// Save replaces the stored registry with the given one.
	Save(ctx context.Context, categories []domain.Category) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
