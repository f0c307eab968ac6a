package bot

import (
	"context"
	"fmt"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// handleStart introduces the bot. /help gets the same text.
func (s *Service) handleStart(ctx context.Context, upd domain.Update) (Outcome, error) {
	help, tryQuery := searchHelp(s.telegram.BotName(), upd.Chat.Private)

	err := s.telegram.Send(ctx, upd.Chat.ID, introductionMessage(help), domain.SendOptions{
		TryInlineQuery: tryQuery,
	})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("send introduction: %w", err)
	}

	return OutcomeHandled, nil
}

// handleList shows the chat's chosen ingredients.
func (s *Service) handleList(ctx context.Context, upd domain.Update) (Outcome, error) {
	ingredients, err := s.ingredients.ListByChat(ctx, upd.Chat.ID)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("list ingredients: %w", err)
	}

	if len(ingredients) == 0 {
		return OutcomeHandled, s.sendNoChosenIngredients(ctx, upd)
	}

	err = s.telegram.Send(ctx, upd.Chat.ID, ingredientsListMessage(ingredients, upd.Chat.Private), domain.SendOptions{})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("send ingredient list: %w", err)
	}

	return OutcomeHandled, nil
}

// handleClear wipes the chat's state: ingredients, cached search results,
// and any pending removal mode go in one transaction.
func (s *Service) handleClear(ctx context.Context, upd domain.Update) (Outcome, error) {
	var removed int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if removed, err = s.ingredients.DeleteAll(ctx, upd.Chat.ID); err != nil {
			return fmt.Errorf("clear ingredients: %w", err)
		}
		if err := s.cache.Drop(ctx, upd.Chat.ID); err != nil {
			return fmt.Errorf("drop result cache: %w", err)
		}
		if err := s.modes.Reset(ctx, upd.Chat.ID); err != nil {
			return fmt.Errorf("reset chat mode: %w", err)
		}
		return nil
	})
	if err != nil {
		return OutcomeHandled, err
	}

	s.log.Info("cleared chat ingredients", "chat_id", upd.Chat.ID, "removed", removed)

	err = s.telegram.Send(ctx, upd.Chat.ID, clearedIngredientsMessage(), domain.SendOptions{})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("confirm clear: %w", err)
	}

	return OutcomeHandled, nil
}

// sendNoChosenIngredients tells an empty chat how to add its first
// ingredient.
func (s *Service) sendNoChosenIngredients(ctx context.Context, upd domain.Update) error {
	help, tryQuery := searchHelp(s.telegram.BotName(), upd.Chat.Private)

	err := s.telegram.Send(ctx, upd.Chat.ID, noChosenIngredientsMessage(help), domain.SendOptions{
		TryInlineQuery: tryQuery,
	})
	if err != nil {
		return fmt.Errorf("send no-ingredients help: %w", err)
	}
	return nil
}
