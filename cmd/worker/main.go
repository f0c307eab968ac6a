// Command worker consumes normalized updates from the Redis job queue and
// runs the bot logic against PostgreSQL, the drink catalog API and Telegram.
// Delivery is at-least-once: a job that fails with a retryable error is
// redelivered with backoff, so every handler is written to tolerate replays.
//
// Exit codes: 0 = clean shutdown, 1 = startup error.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/boozybot/boozy-backend/internal/adapter/addb"
	"github.com/boozybot/boozy-backend/internal/adapter/postgres"
	auditrepo "github.com/boozybot/boozy-backend/internal/adapter/postgres/audit"
	chatmoderepo "github.com/boozybot/boozy-backend/internal/adapter/postgres/chatmode"
	ingredientrepo "github.com/boozybot/boozy-backend/internal/adapter/postgres/ingredient"
	searchcacherepo "github.com/boozybot/boozy-backend/internal/adapter/postgres/searchcache"
	"github.com/boozybot/boozy-backend/internal/adapter/redisq"
	"github.com/boozybot/boozy-backend/internal/adapter/telegram"
	"github.com/boozybot/boozy-backend/internal/app"
	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
	"github.com/boozybot/boozy-backend/internal/service/bot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting worker", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redisq.NewClient(ctx, cfg.Queue)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	tgClient, err := telegram.New(cfg.Telegram, logger)
	if err != nil {
		logger.Error("connect to telegram", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := bot.NewService(
		logger,
		ingredientrepo.New(pool),
		chatmoderepo.New(pool),
		searchcacherepo.New(pool),
		auditrepo.New(pool),
		addb.New(cfg.Catalog),
		tgClient,
		postgres.NewTxManager(pool),
		cfg.Bot,
	)

	queue := redisq.New(redisClient, cfg.Queue, logger)

	handler := func(ctx context.Context, upd domain.Update) error {
		outcome, err := svc.HandleUpdate(ctx, upd)
		if err != nil {
			return err
		}
		if outcome != bot.OutcomeHandled {
			logger.Debug("update not handled",
				slog.Int64("update_id", upd.ID),
				slog.String("type", string(upd.Type)),
				slog.String("outcome", string(outcome)),
			)
		}
		return nil
	}

	if err := queue.Consume(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consume queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("worker stopped")
}
