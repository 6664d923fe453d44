package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
)

// MockBalanceRepository is a mock implementation of BalanceRepository.
// The zero value behaves like an empty store; Save makes the balance
// load as found.
type MockBalanceRepository struct {
	mu      sync.RWMutex
	balance decimal.Decimal
	found   bool

	LoadFunc func(ctx context.Context) (decimal.Decimal, bool, error)
	SaveFunc func(ctx context.Context, balance decimal.Decimal) error
	WipeFunc func(ctx context.Context) error
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{}
}

func (m *MockBalanceRepository) Load(ctx context.Context) (decimal.Decimal, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balance, m.found, nil
}

func (m *MockBalanceRepository) Save(ctx context.Context, balance decimal.Decimal) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = balance
	m.found = true
	return nil
}

func (m *MockBalanceRepository) Wipe(ctx context.Context) error {
	if m.WipeFunc != nil {
		return m.WipeFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = decimal.Zero
	m.found = false
	return nil
}

// Stored returns the saved balance and whether one exists.
func (m *MockBalanceRepository) Stored() (decimal.Decimal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balance, m.found
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction

	LoadFunc func(ctx context.Context) ([]domain.Transaction, error)
	SaveFunc func(ctx context.Context, transactions []domain.Transaction) error
	WipeFunc func(ctx context.Context) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Load(ctx context.Context) ([]domain.Transaction, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

func (m *MockTransactionRepository) Save(ctx context.Context, transactions []domain.Transaction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, transactions)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = make([]domain.Transaction, len(transactions))
	copy(m.transactions, transactions)
	return nil
}

func (m *MockTransactionRepository) Wipe(ctx context.Context) error {
	if m.WipeFunc != nil {
		return m.WipeFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = nil
	return nil
}

// Stored returns the saved log.
func (m *MockTransactionRepository) Stored() []domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
	found      bool

	LoadFunc func(ctx context.Context) ([]domain.Category, bool, error)
	SaveFunc func(ctx context.Context, categories []domain.Category) error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

func (m *MockCategoryRepository) Load(ctx context.Context) ([]domain.Category, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Category, len(m.categories))
	copy(out, m.categories)
	return out, m.found, nil
}

func (m *MockCategoryRepository) Save(ctx context.Context, categories []domain.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, categories)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = make([]domain.Category, len(categories))
	copy(m.categories, categories)
	m.found = true
	return nil
}

// Stored returns the saved registry and whether one exists.
func (m *MockCategoryRepository) Stored() ([]domain.Category, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Category, len(m.categories))
	copy(out, m.categories)
	return out, m.found
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
