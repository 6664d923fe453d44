package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository on
// the transactions table. Income rows carry a NULL category_id in
// place of the sentinel string.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Load returns the stored log in insertion order.
func (r *TransactionRepository) Load(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount, category_id, description, created_at
		 FROM transactions ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var (
			id          string
			amount      string
			categoryID  sql.NullInt64
			description string
			createdAt   string
		)
		if err := rows.Scan(&id, &amount, &categoryID, &description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		transaction, err := rowToTransaction(id, amount, categoryID, description, createdAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

// Save replaces the stored log inside a transaction.
func (r *TransactionRepository) Save(ctx context.Context, transactions []domain.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	for _, t := range transactions {
		categoryID := sql.NullInt64{}
		if !t.Category.Income {
			categoryID = sql.NullInt64{Int64: int64(t.Category.ID), Valid: true}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, amount, category_id, description, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Amount.String(), categoryID, t.Description, t.CreatedAt.Format(domain.TimestampLayout),
		)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}

// Wipe clears the stored log.
func (r *TransactionRepository) Wipe(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("wipe transactions: %w", err)
	}

	return nil
}

func rowToTransaction(id, amount string, categoryID sql.NullInt64, description, createdAt string) (domain.Transaction, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}

	category := domain.IncomeCategory()
	if categoryID.Valid {
		category = domain.ExpenseCategory(int(categoryID.Int64))
	}

	parsedAt, err := time.ParseInLocation(domain.TimestampLayout, createdAt, time.Local)
	if err != nil {
		parsedAt = time.Time{}
	}

	return domain.Transaction{
		ID:          id,
		Amount:      parsedAmount,
		Category:    category,
		Description: description,
		CreatedAt:   parsedAt,
	}, nil
}
