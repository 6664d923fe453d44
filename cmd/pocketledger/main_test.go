package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pocketledger/internal/adapter/idgen"
	"pocketledger/internal/adapter/repository/jsonfile"
	"pocketledger/internal/usecase"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

// newTestLedger builds a ledger over flat files in a temp directory
// with a 100 starting balance.
func newTestLedger(t *testing.T) *usecase.LedgerUseCase {
	t.Helper()

	dir := t.TempDir()
	log := zerolog.Nop()
	retrier := jsonfile.NewRetrier(log)

	ledger := usecase.NewLedgerUseCase(
		jsonfile.NewBalanceRepository(filepath.Join(dir, "balance.json"), retrier, log),
		jsonfile.NewTransactionRepository(filepath.Join(dir, "expenses.json"), retrier, log),
		jsonfile.NewCategoryRepository(filepath.Join(dir, "categories.json"), retrier, log),
		idgen.NewULIDGenerator(),
		log,
	)

	ctx := context.Background()
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	if err := ledger.SetInitialBalance(ctx, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("failed to set balance: %v", err)
	}

	return ledger
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataDir = ""
		backend = ""
	})
}

func TestPrintBalance(t *testing.T) {
	ledger := newTestLedger(t)

	var buf bytes.Buffer
	printBalance(&buf, ledger)

	if got := buf.String(); got != "Current balance: $100.00\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrintTransactionsEmpty(t *testing.T) {
	ledger := newTestLedger(t)

	var buf bytes.Buffer
	printTransactions(&buf, ledger)

	if got := buf.String(); got != "No transactions recorded yet.\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrintTransactions(t *testing.T) {
	ledger := newTestLedger(t)
	if _, err := ledger.AddExpense(context.Background(), usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to add expense: %v", err)
	}

	var buf bytes.Buffer
	printTransactions(&buf, ledger)

	if !strings.Contains(buf.String(), "1. $-30.00 - Food (Lunch) on ") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestPrintTotals(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	if _, err := ledger.AddExpense(ctx, usecase.AddExpenseInput{
		Amount:      decimal.NewFromInt(30),
		CategoryID:  1,
		Description: "Lunch",
	}); err != nil {
		t.Fatalf("failed to add expense: %v", err)
	}
	if _, err := ledger.AddFunds(ctx, usecase.AddFundsInput{
		Amount:      decimal.NewFromInt(50),
		Description: "Salary",
	}); err != nil {
		t.Fatalf("failed to add funds: %v", err)
	}

	var buf bytes.Buffer
	printTotals(&buf, ledger)

	want := "Total spending: $30.00\nTotal income: $50.00\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrintCategories(t *testing.T) {
	ledger := newTestLedger(t)

	var buf bytes.Buffer
	printCategories(&buf, ledger)

	out := buf.String()
	for _, want := range []string{"1. Food", "2. Transport", "3. Entertainment", "4. Shopping", "5. Other"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	found := map[string]bool{}
	for _, cmd := range root.Commands() {
		found[cmd.Name()] = true
	}

	for _, name := range []string{"balance", "transactions", "total", "categories"} {
		if !found[name] {
			t.Errorf("expected subcommand %q registered", name)
		}
	}
}

func TestBalanceCommandOnFreshStore(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	root := newRootCmd()
	root.SetArgs([]string{"balance", "--data-dir", dir})

	out := captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "Current balance: $0.00") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCategoriesAddCommandPersists(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	addCmd := newRootCmd()
	addCmd.SetArgs([]string{"categories", "add", "Rent", "--data-dir", dir})
	out := captureOutput(t, func() {
		if err := addCmd.Execute(); err != nil {
			t.Fatalf("add command failed: %v", err)
		}
	})
	if !strings.Contains(out, "Category added: 6. Rent") {
		t.Fatalf("unexpected add output: %q", out)
	}

	listCmd := newRootCmd()
	listCmd.SetArgs([]string{"categories", "--data-dir", dir})
	out = captureOutput(t, func() {
		if err := listCmd.Execute(); err != nil {
			t.Fatalf("list command failed: %v", err)
		}
	})
	if !strings.Contains(out, "6. Rent") {
		t.Fatalf("expected added category listed, got: %q", out)
	}
}

func TestBalanceCommandSQLiteBackend(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	root := newRootCmd()
	root.SetArgs([]string{"balance", "--backend", "sqlite", "--data-dir", dir})

	out := captureOutput(t, func() {
		if err := root.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "Current balance: $0.00") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "ledger.db")); err != nil {
		t.Fatalf("expected sqlite database created: %v", err)
	}
}

func TestBuildAppRejectsUnknownBackend(t *testing.T) {
	resetFlags(t)
	dataDir = t.TempDir()
	backend = "mongodb"

	if _, err := buildApp(context.Background()); err == nil {
		t.Fatal("expected error for unknown backend, got nil")
	}
}
