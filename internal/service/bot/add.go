package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// handleAdd registers a chosen ingredient in the chat. The code usually
// arrives from an inline result the user picked, but anything a user types
// after /add gets the same treatment: the catalog is the authority on
// whether the code exists.
func (s *Service) handleAdd(ctx context.Context, upd domain.Update) (Outcome, error) {
	chatID := upd.Chat.ID
	code := upd.IngredientCode

	exists, err := s.ingredients.Exists(ctx, chatID, code)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("check ingredient %s: %w", code, err)
	}
	if exists {
		return OutcomeHandled, s.telegram.Send(ctx, chatID, ingredientExistsMessage(), domain.SendOptions{})
	}

	count, err := s.ingredients.Count(ctx, chatID)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("count ingredients: %w", err)
	}
	if count >= s.cfg.MaxIngredients {
		return OutcomeHandled, s.telegram.Send(ctx, chatID, tooManyIngredientsMessage(s.cfg.MaxIngredients), domain.SendOptions{})
	}

	catalogIng, err := s.catalog.GetIngredient(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		// An unknown code is a user mistake, not a system failure. Reply
		// and settle the update.
		return OutcomeHandled, s.telegram.Send(ctx, chatID, ingredientNotInCatalogMessage(code), domain.SendOptions{})
	}
	if err != nil {
		return OutcomeHandled, fmt.Errorf("fetch ingredient %s: %w", code, err)
	}

	_, err = s.ingredients.Create(ctx, domain.Ingredient{
		ID:        uuid.New(),
		ChatID:    chatID,
		Code:      catalogIng.ID,
		Name:      catalogIng.Name,
		Category:  catalogIng.Category,
		AddedBy:   upd.From.ID,
		AddedName: upd.From.FullName(),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent add of the same code.
		return OutcomeHandled, s.telegram.Send(ctx, chatID, ingredientExistsMessage(), domain.SendOptions{})
	}
	if err != nil {
		return OutcomeHandled, fmt.Errorf("store ingredient %s: %w", code, err)
	}

	s.log.Info("added ingredient", "chat_id", chatID, "code", catalogIng.ID)

	err = s.telegram.Send(ctx, chatID, addedIngredientMessage(catalogIng.Name), domain.SendOptions{})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("confirm add: %w", err)
	}

	return OutcomeHandled, nil
}
