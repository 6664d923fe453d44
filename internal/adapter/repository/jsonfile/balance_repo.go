package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// balanceDocument is the wire format of the balance file.
type balanceDocument struct {
	Balance json.Number `json:"balance"`
}

// BalanceRepository implements usecase.BalanceRepository on a flat
// JSON file of the form {"balance": <number>}.
type BalanceRepository struct {
	path    string
	retrier *Retrier
	logger  zerolog.Logger
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(path string, retrier *Retrier, logger zerolog.Logger) *BalanceRepository {
	return &BalanceRepository{
		path:    path,
		retrier: retrier,
		logger:  logger,
	}
}

// Load returns the stored balance. Missing, empty or unparsable files
// report found=false so the caller can prompt for an initial balance.
func (r *BalanceRepository) Load(ctx context.Context) (decimal.Decimal, bool, error) {
	data, found, err := readFile(r.path)
	if err != nil {
		return decimal.Zero, false, err
	}
	if !found {
		return decimal.Zero, false, nil
	}

	var doc balanceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("unparsable balance file, treating as absent")
		return decimal.Zero, false, nil
	}

	balance, err := decimal.NewFromString(doc.Balance.String())
	if err != nil {
		r.logger.Warn().Str("path", r.path).Str("value", doc.Balance.String()).Msg("invalid balance value, treating as absent")
		return decimal.Zero, false, nil
	}

	return balance, true, nil
}

// Save rewrites the balance file.
func (r *BalanceRepository) Save(ctx context.Context, balance decimal.Decimal) error {
	doc := balanceDocument{Balance: json.Number(balance.String())}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal balance: %w", err)
	}

	return r.retrier.Retry(ctx, func() error {
		return writeFile(r.path, data)
	})
}

// Wipe empties the balance file so the next Load reports it absent.
func (r *BalanceRepository) Wipe(ctx context.Context) error {
	return r.retrier.Retry(ctx, func() error {
		return truncateFile(r.path)
	})
}
