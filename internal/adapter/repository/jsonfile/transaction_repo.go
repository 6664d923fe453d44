package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pocketledger/internal/domain"
)

// transactionDocument is the wire format of one transaction. The id
// field is this tool's addition; files written by earlier versions of
// the tracker omit it and still load.
type transactionDocument struct {
	ID          string      `json:"id,omitempty"`
	Amount      json.Number `json:"amount"`
	CategoryID  categoryRef `json:"category_id"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
}

// categoryRef round-trips the original category_id value: a JSON
// number for expenses, the string "Income" for fund additions.
type categoryRef struct {
	ID     int
	Income bool
}

func (c categoryRef) MarshalJSON() ([]byte, error) {
	if c.Income {
		return json.Marshal(domain.IncomeCategoryName)
	}
	return json.Marshal(c.ID)
}

func (c *categoryRef) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == domain.IncomeCategoryName {
		c.Income = true
		return nil
	}

	return fmt.Errorf("invalid category_id value %s", data)
}

// TransactionRepository implements usecase.TransactionRepository on a
// flat JSON file holding the transaction log as an array.
type TransactionRepository struct {
	path    string
	retrier *Retrier
	logger  zerolog.Logger
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(path string, retrier *Retrier, logger zerolog.Logger) *TransactionRepository {
	return &TransactionRepository{
		path:    path,
		retrier: retrier,
		logger:  logger,
	}
}

// Load returns the stored log in file order. Missing, empty or
// unparsable files yield an empty log.
func (r *TransactionRepository) Load(ctx context.Context) ([]domain.Transaction, error) {
	data, found, err := readFile(r.path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var docs []transactionDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("unparsable transactions file, treating as empty")
		return nil, nil
	}

	transactions := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		transactions = append(transactions, docToTransaction(doc))
	}

	return transactions, nil
}

// Save rewrites the transactions file with the given log.
func (r *TransactionRepository) Save(ctx context.Context, transactions []domain.Transaction) error {
	docs := make([]transactionDocument, 0, len(transactions))
	for _, t := range transactions {
		docs = append(docs, transactionToDoc(t))
	}

	data, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal transactions: %w", err)
	}

	return r.retrier.Retry(ctx, func() error {
		return writeFile(r.path, data)
	})
}

// Wipe empties the transactions file.
func (r *TransactionRepository) Wipe(ctx context.Context) error {
	return r.retrier.Retry(ctx, func() error {
		return truncateFile(r.path)
	})
}

func docToTransaction(doc transactionDocument) domain.Transaction {
	amount, err := decimal.NewFromString(doc.Amount.String())
	if err != nil {
		amount = decimal.Zero
	}

	// A bad date only loses the display timestamp, never the row.
	createdAt, err := time.ParseInLocation(domain.TimestampLayout, doc.Date, time.Local)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.Transaction{
		ID:          doc.ID,
		Amount:      amount,
		Category:    domain.CategoryRef{ID: doc.CategoryID.ID, Income: doc.CategoryID.Income},
		Description: doc.Description,
		CreatedAt:   createdAt,
	}
}

func transactionToDoc(t domain.Transaction) transactionDocument {
	return transactionDocument{
		ID:          t.ID,
		Amount:      json.Number(t.Amount.String()),
		CategoryID:  categoryRef{ID: t.Category.ID, Income: t.Category.Income},
		Description: t.Description,
		Date:        t.CreatedAt.Format(domain.TimestampLayout),
	}
}
