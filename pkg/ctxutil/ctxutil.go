package ctxutil

import (
	"context"
)

type ctxKey string

const (
	jobIDKey    ctxKey = "job_id"
	updateIDKey ctxKey = "update_id"
)

// WithJobID stores the queue job ID in the context.
func WithJobID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, jobIDKey, id)
}

// JobIDFromCtx extracts the queue job ID from the context.
// Returns an empty string if absent.
func JobIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(jobIDKey).(string)
	return id
}

// WithUpdateID stores the Telegram update ID in the context.
func WithUpdateID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, updateIDKey, id)
}

// UpdateIDFromCtx extracts the Telegram update ID from the context.
// Returns 0 and false if the value is missing or of the wrong type.
func UpdateIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(updateIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
