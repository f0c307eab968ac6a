// Package matcher ranks candidate drinks against the ingredients a chat
// already has.
package matcher

import (
	"sort"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// Match filters candidates down to drinks the chat can plausibly make and
// orders them best first.
//
// A candidate stays when the number of its significant ingredients the chat
// is missing does not exceed tolerance. Ingredients whose category reports
// not significant (ice, mixers, decoration and the like) never count
// against a drink. Survivors are ordered by rating, highest first; the
// sort is stable, so equally rated drinks keep the catalog order.
func Match(candidates []domain.Drink, owned domain.IngredientSet, tolerance int) []domain.Drink {
	matched := make([]domain.Drink, 0, len(candidates))
	for _, drink := range candidates {
		if missingSignificant(drink, owned) <= tolerance {
			matched = append(matched, drink)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	return matched
}

func missingSignificant(drink domain.Drink, owned domain.IngredientSet) int {
	missing := 0
	for _, ing := range drink.Ingredients {
		if owned.Has(ing.Code) {
			continue
		}
		if ing.Category.Significant() {
			missing++
		}
	}
	return missing
}
