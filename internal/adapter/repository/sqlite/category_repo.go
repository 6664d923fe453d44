package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"pocketledger/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository on the
// categories table.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Load returns the stored registry ordered by id. found is false when
// the table is empty so the caller can seed the defaults.
func (r *CategoryRepository) Load(ctx context.Context) ([]domain.Category, bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, false, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, false, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, len(categories) > 0, nil
}

// Save replaces the stored registry inside a transaction.
func (r *CategoryRepository) Save(ctx context.Context, categories []domain.Category) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for _, c := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)`,
			c.ID, c.Name,
		)
		if err != nil {
			return fmt.Errorf("insert category %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}
