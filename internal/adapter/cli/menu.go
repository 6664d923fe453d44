// Package cli renders the interactive menu, the ledger's primary
// surface. It adapts free-text prompts into usecase calls: invalid
// input is re-prompted in a loop and domain errors are reported to the
// user, so nothing here ever aborts the session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
	"pocketledger/internal/usecase"
)

// errInputClosed reports that the input stream ended. The menu treats
// it as a request to exit.
var errInputClosed = errors.New("input closed")

// Menu is the interactive command menu over a ledger.
type Menu struct {
	ledger *usecase.LedgerUseCase
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// NewMenu creates a new Menu reading choices from in and writing all
// user-facing text to out.
func NewMenu(ledger *usecase.LedgerUseCase, in io.Reader, out io.Writer, logger zerolog.Logger) *Menu {
	return &Menu{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run drives the menu loop until the user exits or input ends. A fresh
// ledger is initialized with a prompted starting balance first.
func (m *Menu) Run(ctx context.Context) error {
	if m.ledger.NeedsInitialBalance() {
		if err := m.promptInitialBalance(ctx); err != nil {
			return m.finish(err)
		}
	}

	for {
		m.printMenu()

		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.addExpense(ctx)
		case "2":
			err = m.addFunds(ctx)
		case "3":
			m.viewTransactions()
		case "4":
			err = m.filterByCategory(ctx)
		case "5":
			fmt.Fprintf(m.out, "Total spending: $%s\n", m.ledger.TotalSpending().StringFixed(2))
		case "6":
			fmt.Fprintf(m.out, "Current balance: $%s\n", m.ledger.Balance().StringFixed(2))
		case "7":
			err = m.editTransaction(ctx)
		case "8":
			err = m.deleteTransaction(ctx)
		case "9":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please try again.")
		}

		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\nPocket Ledger\n"+
		"1. Add Expense\n"+
		"2. Add Funds\n"+
		"3. View Transactions\n"+
		"4. Filter by Category\n"+
		"5. View Total Spending\n"+
		"6. View Balance\n"+
		"7. Edit a Transaction\n"+
		"8. Delete a Transaction\n"+
		"9. Exit\n")
}

// finish absorbs the end of the input stream; any other error is real.
func (m *Menu) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		m.logger.Debug().Msg("input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) promptInitialBalance(ctx context.Context) error {
	for {
		line, err := m.prompt("Enter your initial balance: ")
		if err != nil {
			return err
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a valid number.")
			continue
		}

		if err := m.ledger.SetInitialBalance(ctx, balance); err != nil {
			fmt.Fprintln(m.out, "Balance cannot be negative. Try again.")
			continue
		}

		return nil
	}
}

func (m *Menu) addExpense(ctx context.Context) error {
	amount, err := m.promptAmount("Enter expense amount: ")
	if err != nil {
		return err
	}

	m.displayCategories()
	categoryID, err := m.promptCategoryID()
	if err != nil {
		return err
	}

	description, err := m.promptNonEmpty("Enter description: ")
	if err != nil {
		return err
	}

	_, err = m.ledger.AddExpense(ctx, usecase.AddExpenseInput{
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
	})
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Insufficient balance! Reduce the amount or add more funds.")
	case err != nil:
		fmt.Fprintf(m.out, "Could not add expense: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Expense added! Remaining balance: $%s\n", m.ledger.Balance().StringFixed(2))
	}

	return nil
}

func (m *Menu) addFunds(ctx context.Context) error {
	amount, err := m.promptAmount("Enter the amount you want to add: ")
	if err != nil {
		return err
	}

	description, err := m.promptNonEmpty("Enter the source of income (e.g., tutoring, gift, salary): ")
	if err != nil {
		return err
	}

	_, err = m.ledger.AddFunds(ctx, usecase.AddFundsInput{
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		fmt.Fprintf(m.out, "Could not add funds: %v\n", err)
		return nil
	}

	fmt.Fprintf(m.out, "Funds added! New balance: $%s\n", m.ledger.Balance().StringFixed(2))
	return nil
}

func (m *Menu) viewTransactions() {
	transactions := m.ledger.Transactions()
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "No transactions recorded yet.")
		return
	}

	for i, t := range transactions {
		fmt.Fprintf(m.out, "%d. $%s - %s (%s) on %s\n",
			i+1,
			t.Amount.StringFixed(2),
			m.ledger.CategoryName(t.Category),
			t.Description,
			t.CreatedAt.Format(domain.TimestampLayout),
		)
	}
}

func (m *Menu) filterByCategory(ctx context.Context) error {
	m.displayCategories()

	categoryID, err := m.promptCategoryID()
	if err != nil {
		return err
	}

	filtered, err := m.ledger.FilterByCategory(categoryID)
	if err != nil {
		fmt.Fprintf(m.out, "Could not filter transactions: %v\n", err)
		return nil
	}

	if len(filtered) == 0 {
		fmt.Fprintf(m.out, "No transactions found for category ID %d.\n", categoryID)
		return nil
	}

	fmt.Fprintf(m.out, "\nTransactions for %s:\n", m.ledger.CategoryName(domain.ExpenseCategory(categoryID)))
	for _, t := range filtered {
		fmt.Fprintf(m.out, "$%s - %s on %s\n",
			t.Amount.StringFixed(2),
			t.Description,
			t.CreatedAt.Format(domain.TimestampLayout),
		)
	}

	return nil
}

func (m *Menu) editTransaction(ctx context.Context) error {
	m.viewTransactions()
	if len(m.ledger.Transactions()) == 0 {
		return nil
	}

	index, err := m.promptIndex("Enter the number of the transaction to edit: ")
	if err != nil {
		return err
	}

	old, err := m.ledger.TransactionAt(index)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid transaction number.")
		return nil
	}

	amount, err := m.promptAmount("Enter new amount: ")
	if err != nil {
		return err
	}

	categoryID := 0
	if !old.IsIncome() {
		m.displayCategories()
		if categoryID, err = m.promptCategoryID(); err != nil {
			return err
		}
	}

	description, err := m.promptNonEmpty("Enter new description: ")
	if err != nil {
		return err
	}

	_, err = m.ledger.EditTransaction(ctx, usecase.EditTransactionInput{
		Index:       index,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
	})
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Insufficient balance for that amount! Transaction unchanged.")
	case err != nil:
		fmt.Fprintf(m.out, "Could not edit transaction: %v\n", err)
	default:
		fmt.Fprintln(m.out, "Transaction updated successfully!")
	}

	return nil
}

func (m *Menu) deleteTransaction(ctx context.Context) error {
	m.viewTransactions()
	if len(m.ledger.Transactions()) == 0 {
		return nil
	}

	index, err := m.promptIndex("Enter the number of the transaction to delete: ")
	if err != nil {
		return err
	}

	_, err = m.ledger.DeleteTransaction(ctx, index)
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		fmt.Fprintln(m.out, "Invalid transaction number.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Cannot delete this income: its funds were already spent.")
	case err != nil:
		fmt.Fprintf(m.out, "Could not delete transaction: %v\n", err)
	default:
		fmt.Fprintln(m.out, "Transaction deleted successfully!")
	}

	return nil
}

func (m *Menu) displayCategories() {
	fmt.Fprintln(m.out, "\nAvailable Categories:")
	for _, c := range m.ledger.Categories() {
		fmt.Fprintf(m.out, "%d. %s\n", c.ID, c.Name)
	}
}

// prompt prints the prompt text and reads one line.
func (m *Menu) prompt(text string) (string, error) {
	fmt.Fprint(m.out, text)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}

	return m.in.Text(), nil
}

// promptAmount reads a positive amount, re-prompting on bad input.
func (m *Menu) promptAmount(text string) (decimal.Decimal, error) {
	for {
		line, err := m.prompt(text)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a valid number.")
			continue
		}

		if amount.IsNegative() {
			fmt.Fprintln(m.out, "Amount cannot be negative. Please try again.")
			continue
		}

		if amount.IsZero() {
			fmt.Fprintln(m.out, "Amount must be greater than zero. Please try again.")
			continue
		}

		return amount, nil
	}
}

// promptNonEmpty reads a non-empty line, re-prompting on empty input.
func (m *Menu) promptNonEmpty(text string) (string, error) {
	for {
		line, err := m.prompt(text)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(line) != "" {
			return line, nil
		}

		fmt.Fprintln(m.out, "Input cannot be empty. Please try again.")
	}
}

// promptCategoryID reads a category id present in the registry.
func (m *Menu) promptCategoryID() (int, error) {
	for {
		line, err := m.prompt("Enter category ID: ")
		if err != nil {
			return 0, err
		}

		id, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a number.")
			continue
		}

		if _, ok := m.ledger.CategoryByID(id); !ok {
			fmt.Fprintln(m.out, "Invalid category ID. Please try again.")
			continue
		}

		return id, nil
	}
}

// promptIndex reads a 1-based list position.
func (m *Menu) promptIndex(text string) (int, error) {
	for {
		line, err := m.prompt(text)
		if err != nil {
			return 0, err
		}

		index, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a number.")
			continue
		}

		return index, nil
	}
}
