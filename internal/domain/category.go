package domain

// Category represents a named grouping that classifies expense transactions.
type Category struct {
	ID   int
	Name string
}

// DefaultCategories returns the seed set used when no category registry exists.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transport"},
		{ID: 3, Name: "Entertainment"},
		{ID: 4, Name: "Shopping"},
		{ID: 5, Name: "Other"},
	}
}
