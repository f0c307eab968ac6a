// Package redisq implements the update queue on Redis. The listener pushes
// normalized updates, the worker consumes them. Delivery is at-least-once:
// a job sits on the processing list while its handler runs, failed jobs go
// back through a delayed set with exponential backoff, and jobs that
// exhaust their attempts land on a dead list for manual inspection.
package redisq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
	"github.com/boozybot/boozy-backend/pkg/ctxutil"
)

// blockTimeout bounds each BRPOPLPUSH so consumers notice ctx cancellation.
const blockTimeout = time.Second

// promoteInterval is how often due delayed jobs move back to waiting.
const promoteInterval = time.Second

// Job is the queue envelope around one normalized update.
type Job struct {
	ID         string        `json:"id"`
	Attempts   int           `json:"attempts"`
	EnqueuedAt time.Time     `json:"enqueued_at"`
	Update     domain.Update `json:"update"`
}

// Handler processes one update. A nil return acknowledges the job. An error
// for which domain.IsFatal is true drops the job without retrying; any
// other error schedules a retry.
type Handler func(ctx context.Context, upd domain.Update) error

// Queue is a reliable Redis-backed update queue.
type Queue struct {
	client *redis.Client
	cfg    config.QueueConfig
	log    *slog.Logger
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.QueueConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

// New creates a queue on an existing Redis client.
func New(client *redis.Client, cfg config.QueueConfig, log *slog.Logger) *Queue {
	return &Queue{
		client: client,
		cfg:    cfg,
		log:    log.With("queue", cfg.Name),
	}
}

func (q *Queue) waitingKey() string    { return "queue:" + q.cfg.Name + ":waiting" }
func (q *Queue) processingKey() string { return "queue:" + q.cfg.Name + ":processing" }
func (q *Queue) delayedKey() string    { return "queue:" + q.cfg.Name + ":delayed" }
func (q *Queue) deadKey() string       { return "queue:" + q.cfg.Name + ":dead" }

// Enqueue pushes one update onto the waiting list and returns the job ID.
func (q *Queue) Enqueue(ctx context.Context, upd domain.Update) (string, error) {
	job := Job{
		ID:         uuid.NewString(),
		EnqueuedAt: time.Now().UTC(),
		Update:     upd,
	}

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job for update %d: %w", upd.ID, err)
	}

	if err := q.client.LPush(ctx, q.waitingKey(), body).Err(); err != nil {
		return "", fmt.Errorf("enqueue update %d: %w", upd.ID, err)
	}

	return job.ID, nil
}

// Depth returns how many jobs are waiting.
func (q *Queue) Depth(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.waitingKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("queue depth: %w", err)
	}
	return n, nil
}

// Consume runs cfg.Concurrency consumer loops plus one promoter until ctx
// is canceled. Jobs left on the processing list by a previous crash are
// requeued first.
func (q *Queue) Consume(ctx context.Context, handler Handler) error {
	if err := q.recoverStalled(ctx); err != nil {
		return fmt.Errorf("recover stalled jobs: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		q.promoteLoop(ctx)
	}()

	for i := 0; i < q.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.consumeLoop(ctx, handler)
		}()
	}

	wg.Wait()
	return ctx.Err()
}

// recoverStalled moves everything from processing back to waiting. Called
// once on startup; the previous owner of these jobs is gone.
func (q *Queue) recoverStalled(ctx context.Context) error {
	for {
		err := q.client.RPopLPush(ctx, q.processingKey(), q.waitingKey()).Err()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		q.log.Warn("requeued stalled job from previous run")
	}
}

func (q *Queue) consumeLoop(ctx context.Context, handler Handler) {
	for {
		if ctx.Err() != nil {
			return
		}

		payload, err := q.client.BRPopLPush(ctx, q.waitingKey(), q.processingKey(), blockTimeout).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			q.log.Error("failed to pop job", "error", err)
			time.Sleep(blockTimeout)
			continue
		}

		q.process(ctx, payload, handler)
	}
}

// process runs the handler for one popped job and settles it: ack, retry,
// dead-letter, or requeue on shutdown.
func (q *Queue) process(ctx context.Context, payload string, handler Handler) {
	var job Job
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		q.log.Error("dropping unparseable job", "error", err)
		q.ack(ctx, payload)
		return
	}

	log := q.log.With("job_id", job.ID, "update_id", job.Update.ID)

	jobCtx, cancel := context.WithTimeout(ctx, q.cfg.JobTimeout)
	defer cancel()
	jobCtx = ctxutil.WithJobID(jobCtx, job.ID)
	jobCtx = ctxutil.WithUpdateID(jobCtx, job.Update.ID)

	err := handler(jobCtx, job.Update)
	switch {
	case err == nil:
		q.ack(ctx, payload)
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		// Shutdown interrupted the handler, put the job back untouched.
		q.requeue(ctx, payload, log)
	case domain.IsFatal(err):
		log.Warn("dropping job after permanent failure", "error", err)
		q.ack(ctx, payload)
	default:
		q.retry(ctx, job, payload, err, log)
	}
}

// ack removes a settled job from the processing list.
func (q *Queue) ack(ctx context.Context, payload string) {
	if err := q.client.LRem(context.WithoutCancel(ctx), q.processingKey(), 1, payload).Err(); err != nil {
		q.log.Error("failed to ack job", "error", err)
	}
}

// requeue puts an interrupted job back at the head of the waiting list.
func (q *Queue) requeue(ctx context.Context, payload string, log *slog.Logger) {
	bg := context.WithoutCancel(ctx)
	pipe := q.client.TxPipeline()
	pipe.RPush(bg, q.waitingKey(), payload)
	pipe.LRem(bg, q.processingKey(), 1, payload)
	if _, err := pipe.Exec(bg); err != nil {
		log.Error("failed to requeue job", "error", err)
		return
	}
	log.Info("requeued job interrupted by shutdown")
}

// retry schedules the next attempt with exponential backoff, or moves the
// job to the dead list once attempts are exhausted.
func (q *Queue) retry(ctx context.Context, job Job, payload string, cause error, log *slog.Logger) {
	bg := context.WithoutCancel(ctx)

	job.Attempts++
	body, err := json.Marshal(job)
	if err != nil {
		log.Error("failed to marshal job for retry", "error", err)
		return
	}

	if job.Attempts >= q.cfg.MaxAttempts {
		pipe := q.client.TxPipeline()
		pipe.LPush(bg, q.deadKey(), body)
		pipe.LRem(bg, q.processingKey(), 1, payload)
		if _, err := pipe.Exec(bg); err != nil {
			log.Error("failed to dead-letter job", "error", err)
			return
		}
		log.Error("job exhausted its attempts", "attempts", job.Attempts, "error", cause)
		return
	}

	delay := q.cfg.RetryBackoff << (job.Attempts - 1)
	readyAt := time.Now().Add(delay)

	pipe := q.client.TxPipeline()
	pipe.ZAdd(bg, q.delayedKey(), &redis.Z{
		Score:  float64(readyAt.UnixMilli()),
		Member: body,
	})
	pipe.LRem(bg, q.processingKey(), 1, payload)
	if _, err := pipe.Exec(bg); err != nil {
		log.Error("failed to schedule retry", "error", err)
		return
	}

	log.Warn("scheduled job retry",
		"attempt", job.Attempts,
		"delay", delay.String(),
		"error", cause,
	)
}

func (q *Queue) promoteLoop(ctx context.Context) {
	ticker := time.NewTicker(promoteInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := q.promoteDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
				q.log.Error("failed to promote delayed jobs", "error", err)
			}
		}
	}
}

// promoteDue moves delayed jobs whose backoff has elapsed onto the waiting
// list.
func (q *Queue) promoteDue(ctx context.Context) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)

	members, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		return err
	}

	for _, member := range members {
		pipe := q.client.TxPipeline()
		pipe.ZRem(ctx, q.delayedKey(), member)
		pipe.LPush(ctx, q.waitingKey(), member)
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
