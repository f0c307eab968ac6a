package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// handleInline answers an incremental-search query with matching catalog
// ingredients and drinks. An empty query gets a help button instead of
// results.
func (s *Service) handleInline(ctx context.Context, upd domain.Update) (Outcome, error) {
	q := upd.Inline
	if q == nil {
		return OutcomeIgnored, nil
	}

	if q.Query == "" {
		if err := s.telegram.AnswerInlineHelp(ctx, q.QueryID, inlineHelpMessage()); err != nil {
			return OutcomeHandled, fmt.Errorf("answer inline help: %w", err)
		}
		return OutcomeHandled, nil
	}

	cursor := decodeCursor(q.Cursor)
	results := make([]domain.InlineResult, 0, 2*s.cfg.InlinePageSize)

	if !cursor.Ingredients.Done {
		page, err := s.inlineIngredients(ctx, q.Query, &cursor.Ingredients)
		if err != nil {
			return OutcomeHandled, err
		}
		results = append(results, page...)
	}

	if !cursor.Drinks.Done {
		page, err := s.inlineDrinks(ctx, q.Query, &cursor.Drinks)
		if err != nil {
			return OutcomeHandled, err
		}
		results = append(results, page...)
	}

	if err := s.telegram.AnswerInline(ctx, q.QueryID, results, cursor.encode()); err != nil {
		return OutcomeHandled, fmt.Errorf("answer inline query: %w", err)
	}

	return OutcomeHandled, nil
}

// inlineIngredients fetches one ingredient page and advances the offset in
// place.
func (s *Service) inlineIngredients(ctx context.Context, query string, offset *seqOffset) ([]domain.InlineResult, error) {
	ingredients, total, err := s.catalog.SearchIngredients(ctx, query, offset.N, s.cfg.InlinePageSize)
	if err != nil {
		return nil, fmt.Errorf("search ingredients for inline query: %w", err)
	}

	botName := s.telegram.BotName()
	results := make([]domain.InlineResult, 0, len(ingredients))
	for _, ing := range ingredients {
		results = append(results, domain.InlineResult{
			ID:          "i-" + ing.ID,
			Title:       ing.Name,
			Description: ing.Description,
			URL:         ingredientURL(ing.ID),
			ThumbURL:    ingredientThumbURL(ing.ID),
			MessageText: chosenIngredientMessage(botName, ing),
		})
	}

	advance(offset, len(ingredients), total)
	return results, nil
}

// inlineDrinks fetches one drink page and advances the offset in place.
func (s *Service) inlineDrinks(ctx context.Context, query string, offset *seqOffset) ([]domain.InlineResult, error) {
	drinks, total, err := s.catalog.SearchDrinks(ctx, query, offset.N, s.cfg.InlinePageSize)
	if err != nil {
		return nil, fmt.Errorf("search drinks for inline query: %w", err)
	}

	results := make([]domain.InlineResult, 0, len(drinks))
	for _, d := range drinks {
		results = append(results, domain.InlineResult{
			ID:          "d-" + d.ID,
			Title:       d.Name,
			Description: drinkDescription(d),
			URL:         drinkURL(d.ID),
			ThumbURL:    drinkImageURL(d.ID),
			MessageText: inlineDrinkMessage(d),
		})
	}

	advance(offset, len(drinks), total)
	return results, nil
}

// advance moves a sequence offset past the fetched page and marks the
// sequence done when nothing remains beyond it.
func advance(offset *seqOffset, fetched, total int) {
	offset.N += fetched
	if fetched == 0 || offset.N >= total {
		offset.Done = true
	}
}

func drinkDescription(d domain.Drink) string {
	names := make([]string, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		names = append(names, ing.Text)
	}
	return strings.Join(names, ", ")
}

// inlineDrinkMessage is the text posted when the user picks a drink result.
// Unlike the /search rendering it carries no /next hint: there is no result
// cache behind an inline pick.
func inlineDrinkMessage(d domain.Drink) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍸 *%s* ", d.Name)
	if videoURL := drinkVideoURL(d); videoURL != "" {
		fmt.Fprintf(&b, "[(video)](%s) ", videoURL)
	}
	fmt.Fprintf(&b, "[(picture)](%s) ", drinkImageURL(d.ID))
	fmt.Fprintf(&b, "[(details)](%s)\n", drinkURL(d.ID))
	fmt.Fprintf(&b, "*Directions:* %s", d.Description)
	return b.String()
}
