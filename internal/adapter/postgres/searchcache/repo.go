// Package searchcache implements the paginated result cache using
// PostgreSQL. Rows for a chat are always the un-shown suffix of one ranked
// query: a new search replaces the whole set inside one transaction, and
// TakePage consumes rows permanently in rank order.
package searchcache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/boozybot/boozy-backend/internal/adapter/postgres"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Repo provides cached search result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new search cache repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO search_results (id, chat_id, rank, rating, drink)
VALUES ($1, $2, $3, $4, $5)`

const takePageSQL = `
DELETE FROM search_results
WHERE id IN (
    SELECT id FROM search_results
    WHERE chat_id = $1
    ORDER BY rank ASC
    LIMIT $2
)
RETURNING rank, drink`

const dropSQL = `
DELETE FROM search_results WHERE chat_id = $1`

const countSQL = `
SELECT count(*) FROM search_results WHERE chat_id = $1`

// InsertRanked bulk-inserts drinks in their given order; slice position is
// the rank. Callers that need replace-not-append semantics run Drop and
// InsertRanked inside one TxManager transaction.
func (r *Repo) InsertRanked(ctx context.Context, chatID int64, drinks []domain.Drink) error {
	if len(drinks) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	for rank, drink := range drinks {
		payload, err := json.Marshal(drink)
		if err != nil {
			return fmt.Errorf("search_result %s: marshal drink: %w", drink.ID, err)
		}
		if _, err := querier.Exec(ctx, insertSQL, uuid.New(), chatID, rank, drink.Rating, payload); err != nil {
			return postgres.MapError(err, "search_result", chatKey(chatID))
		}
	}

	return nil
}

// TakePage removes and returns up to pageSize drinks in rank order. An
// exhausted (or never filled) cache yields an empty slice, not an error.
func (r *Repo) TakePage(ctx context.Context, chatID int64, pageSize int) ([]domain.Drink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, takePageSQL, chatID, pageSize)
	if err != nil {
		return nil, postgres.MapError(err, "search_result", chatKey(chatID))
	}
	defer rows.Close()

	type ranked struct {
		rank  int
		drink domain.Drink
	}

	page := []ranked{}
	for rows.Next() {
		var (
			rank    int
			payload []byte
		)
		if err := rows.Scan(&rank, &payload); err != nil {
			return nil, fmt.Errorf("scan search_result: %w", err)
		}
		var drink domain.Drink
		if err := json.Unmarshal(payload, &drink); err != nil {
			return nil, fmt.Errorf("search_result rank %d: unmarshal drink: %w", rank, err)
		}
		page = append(page, ranked{rank: rank, drink: drink})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// DELETE ... RETURNING gives no ordering guarantee, restore rank order.
	sort.Slice(page, func(i, j int) bool { return page[i].rank < page[j].rank })

	drinks := make([]domain.Drink, len(page))
	for i, entry := range page {
		drinks[i] = entry.drink
	}
	return drinks, nil
}

// Drop clears all cached entries for a chat.
func (r *Repo) Drop(ctx context.Context, chatID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, dropSQL, chatID); err != nil {
		return postgres.MapError(err, "search_result", chatKey(chatID))
	}

	return nil
}

// Count returns how many cached entries remain for a chat.
func (r *Repo) Count(ctx context.Context, chatID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countSQL, chatID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "search_result", chatKey(chatID))
	}

	return count, nil
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
