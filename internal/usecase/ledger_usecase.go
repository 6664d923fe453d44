package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
)

// LedgerUseCase handles ledger business logic. It owns the in-memory
// state (balance, transaction log, category registry), loaded once and
// persisted at explicit save points after each mutation. Save failures
// are logged and the in-memory state stays authoritative.
type LedgerUseCase struct {
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
	categoryRepo    CategoryRepository
	idGen           IDGenerator
	logger          zerolog.Logger

	balance      domain.Balance
	transactions []domain.Transaction
	categories   []domain.Category
	needsInit    bool
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	balanceRepo BalanceRepository,
	transactionRepo TransactionRepository,
	categoryRepo CategoryRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		idGen:           idGen,
		logger:          logger,
	}
}

// Load pulls all collections into memory. Missing or unreadable state
// falls back to defaults: a zero balance flagged for initialization, an
// empty log, and a freshly seeded category registry. Only storage-level
// failures are returned.
func (uc *LedgerUseCase) Load(ctx context.Context) error {
	balance, found, err := uc.balanceRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	uc.balance = domain.Balance{Amount: balance}
	uc.needsInit = !found

	transactions, err := uc.transactionRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uc.idGen.Generate()
		}
	}
	uc.transactions = transactions

	categories, found, err := uc.categoryRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if !found || len(categories) == 0 {
		categories = domain.DefaultCategories()
		uc.logger.Info().Msg("seeding default categories")
		if err := uc.categoryRepo.Save(ctx, categories); err != nil {
			uc.logger.Error().Err(err).Msg("failed to save categories")
		}
	}
	uc.categories = categories

	return nil
}

// NeedsInitialBalance reports whether no stored balance was found and
// one must be set before the ledger is used.
func (uc *LedgerUseCase) NeedsInitialBalance() bool {
	return uc.needsInit
}

// SetInitialBalance records the starting balance for a fresh ledger.
func (uc *LedgerUseCase) SetInitialBalance(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrNegativeBalance
	}

	uc.balance = domain.Balance{Amount: amount}
	uc.needsInit = false
	uc.persistBalance(ctx)

	return nil
}

// Balance returns the current balance.
func (uc *LedgerUseCase) Balance() decimal.Decimal {
	return uc.balance.Amount
}

// Transactions returns a copy of the transaction log in chronological order.
func (uc *LedgerUseCase) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(uc.transactions))
	copy(out, uc.transactions)
	return out
}

// TransactionAt returns the transaction at a 1-based position.
func (uc *LedgerUseCase) TransactionAt(index int) (domain.Transaction, error) {
	if index < 1 || index > len(uc.transactions) {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return uc.transactions[index-1], nil
}

// Categories returns a copy of the category registry.
func (uc *LedgerUseCase) Categories() []domain.Category {
	out := make([]domain.Category, len(uc.categories))
	copy(out, uc.categories)
	return out
}

// CategoryByID looks up a category by its numeric id.
func (uc *LedgerUseCase) CategoryByID(id int) (domain.Category, bool) {
	for _, c := range uc.categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// CategoryName resolves the display name for a category reference.
// Unknown numeric ids resolve to "Unknown".
func (uc *LedgerUseCase) CategoryName(ref domain.CategoryRef) string {
	if ref.Income {
		return domain.IncomeCategoryName
	}
	if c, ok := uc.CategoryByID(ref.ID); ok {
		return c.Name
	}
	return "Unknown"
}

// AddExpenseInput represents input for recording an expense.
type AddExpenseInput struct {
	Amount      decimal.Decimal
	CategoryID  int
	Description string
}

// AddExpense records a categorized expense and debits the balance. The
// stored amount is negative. Spending more than the balance fails with
// ErrInsufficientFunds and leaves all state unchanged.
func (uc *LedgerUseCase) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	description, err := domain.NormalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	if _, ok := uc.CategoryByID(input.CategoryID); !ok {
		return nil, domain.ErrCategoryNotFound
	}

	if err := uc.balance.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	transaction := domain.Transaction{
		ID:          uc.idGen.Generate(),
		Amount:      input.Amount.Neg(),
		Category:    domain.ExpenseCategory(input.CategoryID),
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	uc.transactions = append(uc.transactions, transaction)
	uc.balance.Amount = uc.balance.ApplyDebit(input.Amount)

	uc.persistTransactions(ctx)
	uc.persistBalance(ctx)

	return &transaction, nil
}

// AddFundsInput represents input for recording a fund addition.
type AddFundsInput struct {
	Amount      decimal.Decimal
	Description string
}

// AddFunds records an income transaction tagged with the income sentinel
// and credits the balance, regardless of the current balance.
func (uc *LedgerUseCase) AddFunds(ctx context.Context, input AddFundsInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	description, err := domain.NormalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	transaction := domain.Transaction{
		ID:          uc.idGen.Generate(),
		Amount:      input.Amount,
		Category:    domain.IncomeCategory(),
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	uc.transactions = append(uc.transactions, transaction)
	uc.balance.Amount = uc.balance.ApplyCredit(input.Amount)

	uc.persistTransactions(ctx)
	uc.persistBalance(ctx)

	return &transaction, nil
}

// EditTransactionInput represents input for replacing a transaction at a
// 1-based position. A transaction keeps its kind: expenses stay expenses,
// income stays income, and CategoryID is ignored for income.
type EditTransactionInput struct {
	Index       int
	Amount      decimal.Decimal
	CategoryID  int
	Description string
}

// EditTransaction replaces the transaction at a 1-based position with
// freshly validated fields and a new timestamp, adjusting the balance by
// the delta between the old and new amounts.
func (uc *LedgerUseCase) EditTransaction(ctx context.Context, input EditTransactionInput) (*domain.Transaction, error) {
	if input.Index < 1 || input.Index > len(uc.transactions) {
		return nil, domain.ErrTransactionNotFound
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	description, err := domain.NormalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	old := uc.transactions[input.Index-1]

	updated := domain.Transaction{
		ID:          old.ID,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if old.IsIncome() {
		updated.Amount = input.Amount
		updated.Category = domain.IncomeCategory()
	} else {
		if _, ok := uc.CategoryByID(input.CategoryID); !ok {
			return nil, domain.ErrCategoryNotFound
		}
		updated.Amount = input.Amount.Neg()
		updated.Category = domain.ExpenseCategory(input.CategoryID)
	}

	delta := updated.Amount.Sub(old.Amount)
	if err := uc.balance.ValidateAdjust(delta); err != nil {
		return nil, err
	}

	uc.transactions[input.Index-1] = updated
	uc.balance.Amount = uc.balance.ApplyAdjust(delta)

	uc.persistTransactions(ctx)
	uc.persistBalance(ctx)

	return &updated, nil
}

// DeleteTransaction removes the transaction at a 1-based position,
// restoring its amount to the balance. Deleting an income transaction
// whose funds were already spent fails with ErrInsufficientFunds.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, index int) (*domain.Transaction, error) {
	if index < 1 || index > len(uc.transactions) {
		return nil, domain.ErrTransactionNotFound
	}

	removed := uc.transactions[index-1]

	delta := removed.Amount.Neg()
	if err := uc.balance.ValidateAdjust(delta); err != nil {
		return nil, err
	}

	uc.transactions = append(uc.transactions[:index-1], uc.transactions[index:]...)
	uc.balance.Amount = uc.balance.ApplyAdjust(delta)

	uc.persistTransactions(ctx)
	uc.persistBalance(ctx)

	return &removed, nil
}

// FilterByCategory returns the transactions recorded under a numeric
// category id. An empty result is not an error; an unknown category is.
func (uc *LedgerUseCase) FilterByCategory(categoryID int) ([]domain.Transaction, error) {
	if _, ok := uc.CategoryByID(categoryID); !ok {
		return nil, domain.ErrCategoryNotFound
	}

	var filtered []domain.Transaction
	for _, t := range uc.transactions {
		if !t.Category.Income && t.Category.ID == categoryID {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}

// TotalSpending returns the magnitude of the sum of all expense amounts.
func (uc *LedgerUseCase) TotalSpending() decimal.Decimal {
	total := decimal.Zero
	for _, t := range uc.transactions {
		if t.Amount.IsNegative() {
			total = total.Add(t.Amount)
		}
	}
	return total.Abs()
}

// TotalIncome returns the sum of all recorded fund additions.
func (uc *LedgerUseCase) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, t := range uc.transactions {
		if t.IsIncome() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// AddCategory appends a category with the next free id to the registry.
func (uc *LedgerUseCase) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateCategoryName(name); err != nil {
		return nil, err
	}

	for _, c := range uc.categories {
		if strings.EqualFold(c.Name, name) {
			return nil, domain.ErrDuplicateCategory
		}
	}

	maxID := 0
	for _, c := range uc.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	category := domain.Category{ID: maxID + 1, Name: name}
	uc.categories = append(uc.categories, category)
	uc.persistCategories(ctx)

	return &category, nil
}

// Reset wipes the balance and transaction log so the next session starts
// fresh. The category registry survives.
func (uc *LedgerUseCase) Reset(ctx context.Context) {
	uc.logger.Warn().Msg("wiping ledger state")

	uc.balance = domain.Balance{}
	uc.transactions = nil
	uc.needsInit = true

	if err := uc.transactionRepo.Wipe(ctx); err != nil {
		uc.logger.Error().Err(err).Msg("failed to wipe transactions")
	}
	if err := uc.balanceRepo.Wipe(ctx); err != nil {
		uc.logger.Error().Err(err).Msg("failed to wipe balance")
	}
}

func (uc *LedgerUseCase) persistTransactions(ctx context.Context) {
	if err := uc.transactionRepo.Save(ctx, uc.transactions); err != nil {
		uc.logger.Error().Err(err).Msg("failed to save transactions")
	}
}

func (uc *LedgerUseCase) persistBalance(ctx context.Context) {
	if err := uc.balanceRepo.Save(ctx, uc.balance.Amount); err != nil {
		uc.logger.Error().Err(err).Msg("failed to save balance")
	}
}

func (uc *LedgerUseCase) persistCategories(ctx context.Context) {
	if err := uc.categoryRepo.Save(ctx, uc.categories); err != nil {
		uc.logger.Error().Err(err).Msg("failed to save categories")
	}
}
