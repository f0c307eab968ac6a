// Command listener long-polls the Telegram Bot API and pushes every
// recognized update onto the Redis job queue. It keeps no state besides the
// poll offset, so it can be restarted at any time; unprocessed updates are
// redelivered by Telegram.
//
// Exit codes: 0 = clean shutdown, 1 = startup or poll error.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boozybot/boozy-backend/internal/adapter/redisq"
	"github.com/boozybot/boozy-backend/internal/adapter/telegram"
	"github.com/boozybot/boozy-backend/internal/app"
	"github.com/boozybot/boozy-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting listener", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := telegram.New(cfg.Telegram, logger)
	if err != nil {
		logger.Error("connect to telegram", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, err := redisq.NewClient(ctx, cfg.Queue)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	queue := redisq.New(redisClient, cfg.Queue, logger)

	if err := poll(ctx, client, queue, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poll loop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("listener stopped")
}

// poll runs the long-poll loop until ctx is canceled. Transient Telegram
// errors are logged and retried with a short pause instead of killing the
// process.
func poll(ctx context.Context, client *telegram.Client, queue *redisq.Queue, logger *slog.Logger) error {
	offset := 0
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		updates, next, err := client.Updates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("get updates", slog.String("error", err.Error()))
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, upd := range updates {
			jobID, err := queue.Enqueue(ctx, upd)
			if err != nil {
				// Leave the offset alone so Telegram redelivers the batch.
				logger.Error("enqueue update", slog.Int64("update_id", upd.ID), slog.String("error", err.Error()))
				return err
			}
			logger.Debug("enqueued update",
				slog.Int64("update_id", upd.ID),
				slog.String("type", string(upd.Type)),
				slog.String("job_id", jobID),
			)
		}

		offset = next
	}
}
