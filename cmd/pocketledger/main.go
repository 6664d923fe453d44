package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pocketledger/internal/adapter/cli"
	"pocketledger/internal/adapter/idgen"
	"pocketledger/internal/adapter/repository/jsonfile"
	"pocketledger/internal/adapter/repository/sqlite"
	"pocketledger/internal/domain"
	"pocketledger/internal/infrastructure/config"
	"pocketledger/internal/infrastructure/logger"
	"pocketledger/internal/usecase"
)

var (
	dataDir string
	backend string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pocketledger",
		Short: "Personal finance ledger",
		Long:  `A personal finance tracker for expenses, income and balance, stored in flat JSON files or SQLite.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides LEDGER_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend, json or sqlite (overrides LEDGER_BACKEND)")

	rootCmd.AddCommand(balanceCmd(), transactionsCmd(), totalCmd(), categoriesCmd())

	return rootCmd
}

// app bundles the wired-up pieces a command works with.
type app struct {
	cfg    *config.Config
	ledger *usecase.LedgerUseCase
	logger zerolog.Logger
	close  func()
}

// buildApp loads configuration, applies flag overrides, wires the
// configured storage backend and loads the ledger.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Backend = backend
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	var (
		balances     usecase.BalanceRepository
		transactions usecase.TransactionRepository
		categories   usecase.CategoryRepository
		closeStore   = func() {}
	)

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLiteDBPath())
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		closeStore = func() { _ = db.Close() }
		balances = sqlite.NewBalanceRepository(db)
		transactions = sqlite.NewTransactionRepository(db)
		categories = sqlite.NewCategoryRepository(db)
	case config.BackendJSON:
		retrier := jsonfile.NewRetrier(log)
		balances = jsonfile.NewBalanceRepository(cfg.BalancePath(), retrier, log)
		transactions = jsonfile.NewTransactionRepository(cfg.TransactionsPath(), retrier, log)
		categories = jsonfile.NewCategoryRepository(cfg.CategoriesPath(), retrier, log)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	ledger := usecase.NewLedgerUseCase(balances, transactions, categories, idgen.NewULIDGenerator(), log)
	if err := ledger.Load(ctx); err != nil {
		closeStore()
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	return &app{cfg: cfg, ledger: ledger, logger: log, close: closeStore}, nil
}

func runMenu(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	menu := cli.NewMenu(a.ledger, os.Stdin, os.Stdout, a.logger)
	if err := menu.Run(ctx); err != nil {
		return err
	}

	if a.cfg.WipeOnExit {
		a.ledger.Reset(ctx)
	}

	return nil
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			printBalance(os.Stdout, a.ledger)
			return nil
		},
	}
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List all recorded transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			printTransactions(os.Stdout, a.ledger)
			return nil
		},
	}
}

func totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print total spending and income",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			printTotals(os.Stdout, a.ledger)
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			printCategories(os.Stdout, a.ledger)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add an expense category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			category, err := a.ledger.AddCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Category added: %d. %s\n", category.ID, category.Name)
			return nil
		},
	})

	return cmd
}

func printBalance(w io.Writer, ledger *usecase.LedgerUseCase) {
	fmt.Fprintf(w, "Current balance: $%s\n", ledger.Balance().StringFixed(2))
}

func printTransactions(w io.Writer, ledger *usecase.LedgerUseCase) {
	transactions := ledger.Transactions()
	if len(transactions) == 0 {
		fmt.Fprintln(w, "No transactions recorded yet.")
		return
	}

	for i, t := range transactions {
		fmt.Fprintf(w, "%d. $%s - %s (%s) on %s\n",
			i+1,
			t.Amount.StringFixed(2),
			ledger.CategoryName(t.Category),
			t.Description,
			t.CreatedAt.Format(domain.TimestampLayout),
		)
	}
}

func printTotals(w io.Writer, ledger *usecase.LedgerUseCase) {
	fmt.Fprintf(w, "Total spending: $%s\n", ledger.TotalSpending().StringFixed(2))
	fmt.Fprintf(w, "Total income: $%s\n", ledger.TotalIncome().StringFixed(2))
}

func printCategories(w io.Writer, ledger *usecase.LedgerUseCase) {
	for _, c := range ledger.Categories() {
		fmt.Fprintf(w, "%d. %s\n", c.ID, c.Name)
	}
}
