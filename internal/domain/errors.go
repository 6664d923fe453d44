package domain

import "errors"

var (
	// Ledger errors
	ErrInsufficientFunds   = errors.New("insufficient balance")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Category errors
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")

	// Validation errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyDescription = errors.New("description cannot be empty")
)
