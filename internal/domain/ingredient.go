package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a catalog item a user registered as available in a chat.
// At most one row exists per (chat, code).
type Ingredient struct {
	ID        uuid.UUID
	ChatID    int64
	Code      string
	Name      string
	Category  Category
	AddedBy   int64
	AddedName string
	CreatedAt time.Time
}

// CatalogIngredient is an ingredient as the remote catalog describes it,
// before it is registered in a chat.
type CatalogIngredient struct {
	ID          string
	Name        string
	Category    Category
	Description string
}

// IngredientSet is an unordered set of catalog ingredient codes used for
// membership tests during matching.
type IngredientSet map[string]struct{}

// NewIngredientSet builds a set from registered ingredients.
func NewIngredientSet(ingredients []Ingredient) IngredientSet {
	set := make(IngredientSet, len(ingredients))
	for _, ing := range ingredients {
		set[ing.Code] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given catalog code.
func (s IngredientSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Codes returns the set contents as a slice. Order is not specified.
func (s IngredientSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	return codes
}
