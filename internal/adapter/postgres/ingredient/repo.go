// Package ingredient implements the chat ingredient repository using
// PostgreSQL. Rows are scoped by chat; at most one row exists per
// (chat_id, code), enforced by a unique index that backstops the service
// layer's existence check under concurrent redelivery.
package ingredient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/boozybot/boozy-backend/internal/adapter/postgres"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ingredient repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const ingredientColumns = `id, chat_id, code, name, category, added_by, added_by_name, created_at`

const createSQL = `
INSERT INTO ingredients (` + ingredientColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + ingredientColumns

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM ingredients WHERE chat_id = $1 AND code = $2)`

const countSQL = `
SELECT count(*) FROM ingredients WHERE chat_id = $1`

const deleteSQL = `
DELETE FROM ingredients WHERE chat_id = $1 AND code = $2`

const deleteAllSQL = `
DELETE FROM ingredients WHERE chat_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByChat returns all ingredients registered in a chat, oldest first.
func (r *Repo) ListByChat(ctx context.Context, chatID int64) ([]domain.Ingredient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := builder.
		Select(ingredientColumns).
		From("ingredients").
		Where(squirrel.Eq{"chat_id": chatID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients by chat: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// Exists reports whether the chat already registered the given code.
func (r *Repo) Exists(ctx context.Context, chatID int64, code string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, chatID, code).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "ingredient", code)
	}

	return exists, nil
}

// Count returns how many ingredients the chat has registered.
func (r *Repo) Count(ctx context.Context, chatID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countSQL, chatID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "ingredient", chatKey(chatID))
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new ingredient and returns the persisted row. A
// concurrent duplicate insert surfaces as domain.ErrAlreadyExists via the
// unique index.
func (r *Repo) Create(ctx context.Context, ing domain.Ingredient) (domain.Ingredient, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		ing.ID,
		ing.ChatID,
		ing.Code,
		ing.Name,
		string(ing.Category),
		ing.AddedBy,
		ing.AddedName,
		now,
	)

	created, err := scanIngredient(row)
	if err != nil {
		return domain.Ingredient{}, postgres.MapError(err, "ingredient", ing.Code)
	}

	return created, nil
}

// Delete removes one ingredient by code, scoped to the chat.
// Returns domain.ErrNotFound if the chat does not own the code.
func (r *Repo) Delete(ctx context.Context, chatID int64, code string) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteSQL, chatID, code)
	if err != nil {
		return postgres.MapError(err, "ingredient", code)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %s: %w", code, domain.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every ingredient of a chat and returns how many rows
// went away. Deleting from an empty chat is not an error.
func (r *Repo) DeleteAll(ctx context.Context, chatID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteAllSQL, chatID)
	if err != nil {
		return 0, postgres.MapError(err, "ingredient", chatKey(chatID))
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanIngredient(row pgx.Row) (domain.Ingredient, error) {
	var (
		ing      domain.Ingredient
		category string
	)
	if err := row.Scan(
		&ing.ID,
		&ing.ChatID,
		&ing.Code,
		&ing.Name,
		&category,
		&ing.AddedBy,
		&ing.AddedName,
		&ing.CreatedAt,
	); err != nil {
		return domain.Ingredient{}, err
	}
	ing.Category = domain.Category(category)
	return ing, nil
}

func scanIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	ingredients := []domain.Ingredient{}
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
