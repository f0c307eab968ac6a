package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// HandleUpdate routes one update to its handler. It is the queue handler:
// errors bubble up to the worker, which retries unless domain.IsFatal says
// otherwise.
func (s *Service) HandleUpdate(ctx context.Context, upd domain.Update) (Outcome, error) {
	log := s.log.With("update_id", upd.ID, "chat_id", upd.Chat.ID)

	switch upd.Type {
	case domain.UpdateCommand:
		if err := s.recordAudit(ctx, upd, upd.Command, upd.Argument); err != nil {
			return OutcomeIgnored, err
		}
		return s.dispatchCommand(ctx, upd, log)

	case domain.UpdateAddIngredient:
		if err := s.recordAudit(ctx, upd, "add", upd.IngredientCode); err != nil {
			return OutcomeIgnored, err
		}
		return s.handleAdd(ctx, upd)

	case domain.UpdateFreeText:
		return s.handleFreeText(ctx, upd)

	case domain.UpdateInlineQuery:
		return s.handleInline(ctx, upd)

	default:
		log.Debug("skipping update of unknown type", "type", upd.Type)
		return OutcomeIgnored, nil
	}
}

func (s *Service) dispatchCommand(ctx context.Context, upd domain.Update, log *slog.Logger) (Outcome, error) {
	log.Info("received bot command", "command", upd.Command)

	switch upd.Command {
	case "start", "help":
		return s.handleStart(ctx, upd)
	case "list":
		return s.handleList(ctx, upd)
	case "remove":
		return s.handleRemove(ctx, upd)
	case "clear":
		return s.handleClear(ctx, upd)
	case "search":
		return s.handleSearch(ctx, upd)
	case "next":
		return s.handleNext(ctx, upd)
	default:
		log.Warn("unrecognized command", "command", upd.Command)
		return OutcomeUnhandled, nil
	}
}

// recordAudit appends the command to the audit log. The update ID keeps
// this idempotent: a redelivered update logs that it was seen before and
// still reaches its handler, so retries work, but only one record exists.
func (s *Service) recordAudit(ctx context.Context, upd domain.Update, command, argument string) error {
	inserted, err := s.audit.Record(ctx, domain.AuditRecord{
		ID:       uuid.New(),
		UpdateID: upd.ID,
		Command:  command,
		Argument: argument,
		UserID:   upd.From.ID,
		Username: upd.From.Username,
	})
	if err != nil {
		return fmt.Errorf("audit command %s: %w", command, err)
	}
	if !inserted {
		s.log.Debug("update already audited, reprocessing after redelivery", "update_id", upd.ID)
	}
	return nil
}
