package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pocketledger/internal/usecase"
	"pocketledger/internal/usecase/mocks"
)

type menuFixture struct {
	ledger  *usecase.LedgerUseCase
	balRepo *mocks.MockBalanceRepository
	txRepo  *mocks.MockTransactionRepository
}

// newFixture builds a loaded ledger backed by in-memory mocks. An
// empty initialBalance leaves the ledger uninitialized, as on a first
// run.
func newFixture(t *testing.T, initialBalance string) *menuFixture {
	t.Helper()

	balRepo := mocks.NewMockBalanceRepository()
	txRepo := mocks.NewMockTransactionRepository()
	catRepo := mocks.NewMockCategoryRepository()

	if initialBalance != "" {
		if err := balRepo.Save(context.Background(), decimal.RequireFromString(initialBalance)); err != nil {
			t.Fatalf("failed to seed balance: %v", err)
		}
	}

	ledger := usecase.NewLedgerUseCase(balRepo, txRepo, catRepo, mocks.NewMockIDGenerator(), zerolog.Nop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}

	return &menuFixture{ledger: ledger, balRepo: balRepo, txRepo: txRepo}
}

// run feeds the scripted input lines to the menu and returns everything
// it printed.
func (f *menuFixture) run(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer
	m := NewMenu(f.ledger, strings.NewReader(script), &out, zerolog.Nop())
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("menu run failed: %v", err)
	}

	return out.String()
}

func TestMenuPromptsForInitialBalanceOnFirstRun(t *testing.T) {
	f := newFixture(t, "")

	out := f.run(t, "100\n9\n")

	if !strings.Contains(out, "Enter your initial balance: ") {
		t.Fatalf("expected initial balance prompt, got:\n%s", out)
	}

	if !f.ledger.Balance().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected balance 100, got %s", f.ledger.Balance())
	}

	if stored, found := f.balRepo.Stored(); !found || !stored.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected initial balance persisted before the menu, got %s found=%v", stored, found)
	}
}

func TestMenuRejectsBadInitialBalance(t *testing.T) {
	f := newFixture(t, "")

	out := f.run(t, "abc\n-5\n50\n9\n")

	if !strings.Contains(out, "Invalid input! Please enter a valid number.") {
		t.Fatalf("expected invalid input message, got:\n%s", out)
	}
	if !strings.Contains(out, "Balance cannot be negative. Try again.") {
		t.Fatalf("expected negative balance message, got:\n%s", out)
	}
	if !f.ledger.Balance().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected balance 50, got %s", f.ledger.Balance())
	}
}

func TestMenuSkipsInitialBalancePromptWhenStored(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "9\n")

	if strings.Contains(out, "Enter your initial balance: ") {
		t.Fatalf("did not expect initial balance prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("expected goodbye on exit, got:\n%s", out)
	}
}

func TestMenuAddExpense(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "1\n30\n1\nLunch\n9\n")

	if !strings.Contains(out, "Expense added! Remaining balance: $70.00") {
		t.Fatalf("expected expense confirmation, got:\n%s", out)
	}

	transactions := f.ledger.Transactions()
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	if !transactions[0].Amount.Equal(decimal.NewFromInt(-30)) {
		t.Fatalf("expected stored amount -30, got %s", transactions[0].Amount)
	}
	if transactions[0].Description != "Lunch" {
		t.Fatalf("expected description Lunch, got %q", transactions[0].Description)
	}

	if stored := f.txRepo.Stored(); len(stored) != 1 {
		t.Fatalf("expected transaction persisted, got %d", len(stored))
	}
}

func TestMenuAddExpenseInsufficientFunds(t *testing.T) {
	f := newFixture(t, "10")

	out := f.run(t, "1\n30\n1\nLunch\n9\n")

	if !strings.Contains(out, "Insufficient balance! Reduce the amount or add more funds.") {
		t.Fatalf("expected insufficient balance message, got:\n%s", out)
	}
	if len(f.ledger.Transactions()) != 0 {
		t.Fatalf("expected no transactions, got %d", len(f.ledger.Transactions()))
	}
	if !f.ledger.Balance().Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected balance unchanged at 10, got %s", f.ledger.Balance())
	}
}

func TestMenuAddExpenseRepromptsOnBadCategory(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "1\n30\n99\n1\nLunch\n9\n")

	if !strings.Contains(out, "Invalid category ID. Please try again.") {
		t.Fatalf("expected invalid category message, got:\n%s", out)
	}
	if len(f.ledger.Transactions()) != 1 {
		t.Fatalf("expected transaction recorded after retry, got %d", len(f.ledger.Transactions()))
	}
}

func TestMenuAddFunds(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "2\n50\nSalary\n9\n")

	if !strings.Contains(out, "Funds added! New balance: $150.00") {
		t.Fatalf("expected funds confirmation, got:\n%s", out)
	}

	transactions := f.ledger.Transactions()
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	if !transactions[0].Category.Income {
		t.Fatalf("expected income sentinel on fund addition")
	}
}

func TestMenuViewTransactionsEmpty(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "3\n9\n")

	if !strings.Contains(out, "No transactions recorded yet.") {
		t.Fatalf("expected empty log message, got:\n%s", out)
	}
}

func TestMenuViewTransactionsShowsCategoryNames(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.ledger.AddExpense(context.Background(), usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	out := f.run(t, "3\n9\n")

	if !strings.Contains(out, "1. $-30.00 - Food (Lunch) on ") {
		t.Fatalf("expected formatted transaction row, got:\n%s", out)
	}
}

func TestMenuFilterByCategoryNoMatches(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "4\n2\n9\n")

	if !strings.Contains(out, "No transactions found for category ID 2.") {
		t.Fatalf("expected empty filter message, got:\n%s", out)
	}
}

func TestMenuFilterByCategory(t *testing.T) {
	f := newFixture(t, "100")
	ctx := context.Background()
	for _, in := range []usecase.AddExpenseInput{
		{Amount: decimal.NewFromInt(30), CategoryID: 1, Description: "Lunch"},
		{Amount: decimal.NewFromInt(5), CategoryID: 2, Description: "Bus"},
	} {
		if _, err := f.ledger.AddExpense(ctx, in); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	out := f.run(t, "4\n1\n9\n")

	if !strings.Contains(out, "Transactions for Food:") {
		t.Fatalf("expected filter header, got:\n%s", out)
	}
	if !strings.Contains(out, "Lunch") || strings.Contains(out, "$-5.00 - Bus") {
		t.Fatalf("expected only Food transactions, got:\n%s", out)
	}
}

func TestMenuTotalsAndBalance(t *testing.T) {
	f := newFixture(t, "100")
	ctx := context.Background()
	if _, err := f.ledger.AddExpense(ctx, usecase.AddExpenseInput{Amount: decimal.NewFromInt(30), CategoryID: 1, Description: "Lunch"}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	out := f.run(t, "5\n6\n9\n")

	if !strings.Contains(out, "Total spending: $30.00") {
		t.Fatalf("expected total spending, got:\n%s", out)
	}
	if !strings.Contains(out, "Current balance: $70.00") {
		t.Fatalf("expected current balance, got:\n%s", out)
	}
}

func TestMenuEditTransaction(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.ledger.AddExpense(context.Background(), usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	out := f.run(t, "7\n1\n40\n2\nDinner\n9\n")

	if !strings.Contains(out, "Transaction updated successfully!") {
		t.Fatalf("expected edit confirmation, got:\n%s", out)
	}

	transactions := f.ledger.Transactions()
	if !transactions[0].Amount.Equal(decimal.NewFromInt(-40)) {
		t.Fatalf("expected amount -40, got %s", transactions[0].Amount)
	}
	if transactions[0].Category.ID != 2 {
		t.Fatalf("expected category 2, got %d", transactions[0].Category.ID)
	}
	if !f.ledger.Balance().Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected balance 60 after edit, got %s", f.ledger.Balance())
	}
}

func TestMenuEditTransactionInvalidIndex(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.ledger.AddExpense(context.Background(), usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	out := f.run(t, "7\n5\n9\n")

	if !strings.Contains(out, "Invalid transaction number.") {
		t.Fatalf("expected invalid number message, got:\n%s", out)
	}
}

func TestMenuDeleteTransaction(t *testing.T) {
	f := newFixture(t, "100")
	if _, err := f.ledger.AddExpense(context.Background(), usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	out := f.run(t, "8\n1\n9\n")

	if !strings.Contains(out, "Transaction deleted successfully!") {
		t.Fatalf("expected delete confirmation, got:\n%s", out)
	}
	if len(f.ledger.Transactions()) != 0 {
		t.Fatalf("expected empty log after delete, got %d", len(f.ledger.Transactions()))
	}
	if !f.ledger.Balance().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected balance restored to 100, got %s", f.ledger.Balance())
	}
}

func TestMenuInvalidChoice(t *testing.T) {
	f := newFixture(t, "100")

	out := f.run(t, "x\n9\n")

	if !strings.Contains(out, "Invalid choice, please try again.") {
		t.Fatalf("expected invalid choice message, got:\n%s", out)
	}
}

func TestMenuEndsCleanlyWhenInputCloses(t *testing.T) {
	f := newFixture(t, "100")

	// No exit choice: the script just runs out.
	out := f.run(t, "6\n")

	if !strings.Contains(out, "Current balance: $100.00") {
		t.Fatalf("expected balance output before input closed, got:\n%s", out)
	}
}
