package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the storage layout for transaction timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// IncomeCategoryName is the sentinel marking fund additions in place of
// a numeric category id.
const IncomeCategoryName = "Income"

// CategoryRef identifies a transaction's category: a numeric category id
// for expenses, or the income sentinel for fund additions.
type CategoryRef struct {
	ID     int
	Income bool
}

// ExpenseCategory returns a reference to a numeric expense category.
func ExpenseCategory(id int) CategoryRef {
	return CategoryRef{ID: id}
}

// IncomeCategory returns the income sentinel reference.
func IncomeCategory() CategoryRef {
	return CategoryRef{Income: true}
}

// Transaction represents a single recorded income or expense event.
// Expenses carry negative amounts, income positive ones.
type Transaction struct {
	CreatedAt   time.Time
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    CategoryRef
}

// Validate validates a transaction record.
func (t *Transaction) Validate() error {
	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return ErrEmptyDescription
	}

	if !t.Category.Income && t.Category.ID <= 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// IsExpense reports whether the transaction reduces the balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction is a fund addition.
func (t *Transaction) IsIncome() bool {
	return t.Category.Income
}
