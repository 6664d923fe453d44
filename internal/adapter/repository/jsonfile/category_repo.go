package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"pocketledger/internal/domain"
)

// categoryDocument is the wire format of one registry entry.
type categoryDocument struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryRepository implements usecase.CategoryRepository on a flat
// JSON file holding the registry as an array of {id, name} objects.
type CategoryRepository struct {
	path    string
	retrier *Retrier
	logger  zerolog.Logger
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(path string, retrier *Retrier, logger zerolog.Logger) *CategoryRepository {
	return &CategoryRepository{
		path:    path,
		retrier: retrier,
		logger:  logger,
	}
}

// Load returns the stored registry. Missing, empty or unparsable files
// report found=false so the caller can seed the defaults.
func (r *CategoryRepository) Load(ctx context.Context) ([]domain.Category, bool, error) {
	data, found, err := readFile(r.path)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	var docs []categoryDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		r.logger.Warn().Err(err).Str("path", r.path).Msg("unparsable categories file, treating as absent")
		return nil, false, nil
	}

	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, domain.Category{ID: doc.ID, Name: doc.Name})
	}

	return categories, true, nil
}

// Save rewrites the categories file with the given registry.
func (r *CategoryRepository) Save(ctx context.Context, categories []domain.Category) error {
	docs := make([]categoryDocument, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, categoryDocument{ID: c.ID, Name: c.Name})
	}

	data, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	return r.retrier.Retry(ctx, func() error {
		return writeFile(r.path, data)
	})
}
