package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceRepository implements usecase.BalanceRepository on the
// single-row balance table. Amounts are stored as decimal strings so
// they round-trip exactly.
type BalanceRepository struct {
	db *sql.DB
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(db *sql.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Load returns the stored balance. found is false when no balance row
// exists yet.
func (r *BalanceRepository) Load(ctx context.Context) (decimal.Decimal, bool, error) {
	var amount string
	err := r.db.QueryRowContext(ctx, `SELECT amount FROM balance WHERE id = 1`).Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("query balance: %w", err)
	}

	balance, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parse stored balance %q: %w", amount, err)
	}

	return balance, true, nil
}

// Save upserts the balance row.
func (r *BalanceRepository) Save(ctx context.Context, balance decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO balance (id, amount) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET amount = excluded.amount`,
		balance.String(),
	)
	if err != nil {
		return fmt.Errorf("save balance: %w", err)
	}

	return nil
}

// Wipe removes the balance row so the next Load reports it absent.
func (r *BalanceRepository) Wipe(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM balance`); err != nil {
		return fmt.Errorf("wipe balance: %w", err)
	}

	return nil
}
