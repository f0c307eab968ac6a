package bot

import (
	"context"
	"fmt"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// handleRemove shows the removal keyboard and arms the session. The
// label → code map travels in the session, so the later free-text reply is
// resolved by lookup rather than by parsing the label.
func (s *Service) handleRemove(ctx context.Context, upd domain.Update) (Outcome, error) {
	chatID := upd.Chat.ID

	ingredients, err := s.ingredients.ListByChat(ctx, chatID)
	if err != nil {
		return OutcomeHandled, fmt.Errorf("list ingredients: %w", err)
	}

	if len(ingredients) == 0 {
		return OutcomeHandled, s.sendNoChosenIngredients(ctx, upd)
	}

	labels := make([]string, 0, len(ingredients))
	choices := make(map[string]string, len(ingredients))
	for _, ing := range ingredients {
		label := choiceLabel(ing)
		labels = append(labels, label)
		choices[label] = ing.Code
	}

	err = s.modes.Set(ctx, domain.ChatSession{
		ChatID:  chatID,
		Mode:    domain.ModeAwaitingRemoval,
		Choices: choices,
	})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("arm removal mode: %w", err)
	}

	err = s.telegram.Send(ctx, chatID, removePromptMessage(), domain.SendOptions{
		ChoiceKeyboard: labels,
		ReplyTo:        upd.MessageID,
	})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("send removal prompt: %w", err)
	}

	return OutcomeHandled, nil
}

// handleFreeText interprets plain text through the session state machine.
// Idle chats produce no reaction at all: in a group the bot sees lots of
// unrelated chatter.
func (s *Service) handleFreeText(ctx context.Context, upd domain.Update) (Outcome, error) {
	chatID := upd.Chat.ID

	session, err := s.modes.Get(ctx, chatID)
	if err != nil {
		return OutcomeIgnored, fmt.Errorf("read chat mode: %w", err)
	}
	if session.Mode != domain.ModeAwaitingRemoval {
		return OutcomeIgnored, nil
	}

	code, ok := session.Choices[upd.Text]
	if !ok {
		// Armed, but this text is not one of the offered labels. Leave the
		// session armed; the user may still tap a button.
		return OutcomeIgnored, nil
	}

	// Order matters: delete, then disarm, then confirm. A failure leaves
	// the session armed so the user can simply tap again.
	if err := s.ingredients.Delete(ctx, chatID, code); err != nil {
		return OutcomeHandled, fmt.Errorf("remove ingredient %s: %w", code, err)
	}
	if err := s.modes.Reset(ctx, chatID); err != nil {
		return OutcomeHandled, fmt.Errorf("disarm removal mode: %w", err)
	}

	s.log.Info("removed ingredient", "chat_id", chatID, "code", code)

	err = s.telegram.Send(ctx, chatID, removedIngredientMessage(upd.Text), domain.SendOptions{
		RemoveKeyboard: true,
	})
	if err != nil {
		return OutcomeHandled, fmt.Errorf("confirm removal: %w", err)
	}

	return OutcomeHandled, nil
}
