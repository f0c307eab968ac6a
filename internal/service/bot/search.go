package bot

import (
	"context"
	"fmt"

	"github.com/boozybot/boozy-backend/internal/domain"
	"github.com/boozybot/boozy-backend/internal/service/matcher"
)

// handleSearch matches the catalog against the chat's ingredients and
// delivers the first page. The rest of the ranking replaces whatever an
// earlier search left in the result cache.
func (s *Service) handleSearch(ctx context.Context, upd domain.Update) (Outcome, error) {
	chatID := upd.Chat.ID

	ingredients, err := s.ingredients.ListByChat(ctx, chatID)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("list ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return OutcomeHandled, s.sendNoChosenIngredients(ctx, upd)
	}

	codes := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		codes = append(codes, ing.Code)
	}
	owned := domain.NewIngredientSet(ingredients)

	candidates, err := s.catalog.DrinksWithIngredients(ctx, codes)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("fetch candidate drinks: %w", err)
	}

	matched := matcher.Match(candidates, owned, s.cfg.Tolerance)
	s.log.Info("matched drinks",
		"chat_id", chatID,
		"candidates", len(candidates),
		"matched", len(matched),
	)

	if len(matched) == 0 {
		help, tryQuery := searchHelp(s.telegram.BotName(), upd.Chat.Private)
		return OutcomeHandled, s.telegram.Send(ctx, chatID, noDrinksFoundMessage(help), domain.SendOptions{
			TryInlineQuery: tryQuery,
		})
	}

	page := matched
	var overflow []domain.Drink
	if len(matched) > s.cfg.PageSize {
		page = matched[:s.cfg.PageSize]
		overflow = matched[s.cfg.PageSize:]
	}

	// Replace, never append: a new search invalidates the previous
	// ranking's leftovers.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.cache.Drop(ctx, chatID); err != nil {
			return fmt.Errorf("drop stale results: %w", err)
		}
		if err := s.cache.InsertRanked(ctx, chatID, overflow); err != nil {
			return fmt.Errorf("cache overflow results: %w", err)
		}
		return nil
	})
	if err != nil {
		return OutcomeHandled, err
	}

	return OutcomeHandled, s.sendDrinks(ctx, chatID, page, owned)
}

// handleNext consumes the next cached page.
func (s *Service) handleNext(ctx context.Context, upd domain.Update) (Outcome, error) {
	chatID := upd.Chat.ID

	drinks, err := s.cache.TakePage(ctx, chatID, s.cfg.PageSize)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("take cached page: %w", err)
	}
	if len(drinks) == 0 {
		return OutcomeHandled, s.telegram.Send(ctx, chatID, noMoreResultsMessage(), domain.SendOptions{})
	}

	ingredients, err := s.ingredients.ListByChat(ctx, chatID)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("list ingredients: %w", err)
	}

	return OutcomeHandled, s.sendDrinks(ctx, chatID, drinks, domain.NewIngredientSet(ingredients))
}

func (s *Service) sendDrinks(ctx context.Context, chatID int64, drinks []domain.Drink, owned domain.IngredientSet) error {
	for _, d := range drinks {
		if err := s.telegram.Send(ctx, chatID, drinkMessage(d, owned), domain.SendOptions{}); err != nil {
			return fmt.Errorf("send drink %s: %w", d.ID, err)
		}
	}
	return nil
}
