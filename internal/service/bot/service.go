// Package bot implements the update dispatcher: the business logic behind
// every command, chosen ingredient, removal reply, and inline query the
// worker pulls off the queue.
package bot

import (
	"context"
	"log/slog"

	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ingredientRepo interface {
	ListByChat(ctx context.Context, chatID int64) ([]domain.Ingredient, error)
	Exists(ctx context.Context, chatID int64, code string) (bool, error)
	Count(ctx context.Context, chatID int64) (int, error)
	Create(ctx context.Context, ing domain.Ingredient) (domain.Ingredient, error)
	Delete(ctx context.Context, chatID int64, code string) error
	DeleteAll(ctx context.Context, chatID int64) (int, error)
}

type modeRepo interface {
	Get(ctx context.Context, chatID int64) (domain.ChatSession, error)
	Set(ctx context.Context, session domain.ChatSession) error
	Reset(ctx context.Context, chatID int64) error
}

type cacheRepo interface {
	InsertRanked(ctx context.Context, chatID int64, drinks []domain.Drink) error
	TakePage(ctx context.Context, chatID int64, pageSize int) ([]domain.Drink, error)
	Drop(ctx context.Context, chatID int64) error
}

type auditRepo interface {
	Record(ctx context.Context, rec domain.AuditRecord) (bool, error)
}

type catalog interface {
	GetIngredient(ctx context.Context, code string) (domain.CatalogIngredient, error)
	SearchIngredients(ctx context.Context, query string, offset, pageSize int) ([]domain.CatalogIngredient, int, error)
	SearchDrinks(ctx context.Context, query string, offset, pageSize int) ([]domain.Drink, int, error)
	DrinksWithIngredients(ctx context.Context, codes []string) ([]domain.Drink, error)
}

type transport interface {
	Send(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error
	AnswerInline(ctx context.Context, queryID string, results []domain.InlineResult, nextCursor string) error
	AnswerInlineHelp(ctx context.Context, queryID, text string) error
	BotName() string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the bot business logic.
type Service struct {
	log         *slog.Logger
	ingredients ingredientRepo
	modes       modeRepo
	cache       cacheRepo
	audit       auditRepo
	catalog     catalog
	telegram    transport
	tx          txManager
	cfg         config.BotConfig
}

// NewService creates a new bot service.
func NewService(
	logger *slog.Logger,
	ingredients ingredientRepo,
	modes modeRepo,
	cache cacheRepo,
	audit auditRepo,
	catalog catalog,
	telegram transport,
	tx txManager,
	cfg config.BotConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "bot"),
		ingredients: ingredients,
		modes:       modes,
		cache:       cache,
		audit:       audit,
		catalog:     catalog,
		telegram:    telegram,
		tx:          tx,
		cfg:         cfg,
	}
}
