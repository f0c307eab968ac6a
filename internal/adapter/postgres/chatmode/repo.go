// Package chatmode implements the per-chat session mode repository using
// PostgreSQL. A chat without a row is in ModeIdle: Get never reports
// absence, it reports the idle session, so callers always work with a
// defined mode value.
package chatmode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/boozybot/boozy-backend/internal/adapter/postgres"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Repo provides chat session mode persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chat mode repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT mode, choices FROM chat_modes WHERE chat_id = $1`

const setSQL = `
INSERT INTO chat_modes (chat_id, mode, choices, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (chat_id) DO UPDATE
SET mode = EXCLUDED.mode, choices = EXCLUDED.choices, updated_at = EXCLUDED.updated_at`

// Get returns the chat's current session. A missing row is ModeIdle with no
// choices.
func (r *Repo) Get(ctx context.Context, chatID int64) (domain.ChatSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var (
		mode        string
		choicesJSON []byte
	)
	err := querier.QueryRow(ctx, getSQL, chatID).Scan(&mode, &choicesJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.IdleSession(chatID), nil
	}
	if err != nil {
		return domain.ChatSession{}, postgres.MapError(err, "chat_mode", chatKey(chatID))
	}

	session := domain.ChatSession{ChatID: chatID, Mode: domain.ChatMode(mode)}
	if !session.Mode.IsValid() {
		// Unknown stored value: fall back to idle rather than poison every
		// later free-text message.
		session.Mode = domain.ModeIdle
	}

	if len(choicesJSON) > 0 {
		choices := make(map[string]string)
		if err := json.Unmarshal(choicesJSON, &choices); err != nil {
			return domain.ChatSession{}, fmt.Errorf("chat_mode %d: unmarshal choices: %w", chatID, err)
		}
		session.Choices = choices
	}

	return session, nil
}

// Set upserts the chat's session mode and choice map.
func (r *Repo) Set(ctx context.Context, session domain.ChatSession) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var choicesJSON []byte
	if len(session.Choices) > 0 {
		var err error
		choicesJSON, err = json.Marshal(session.Choices)
		if err != nil {
			return fmt.Errorf("chat_mode %d: marshal choices: %w", session.ChatID, err)
		}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := querier.Exec(ctx, setSQL, session.ChatID, string(session.Mode), choicesJSON, now)
	if err != nil {
		return postgres.MapError(err, "chat_mode", chatKey(session.ChatID))
	}

	return nil
}

// Reset puts the chat back into ModeIdle and clears the choice map.
func (r *Repo) Reset(ctx context.Context, chatID int64) error {
	return r.Set(ctx, domain.IdleSession(chatID))
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
