// Package audit implements the command audit log using PostgreSQL. The log
// is append-only, and the update_id unique index makes writes idempotent:
// the queue delivers at least once, but one logical dispatch produces
// exactly one record no matter how often it is retried.
package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/boozybot/boozy-backend/internal/adapter/postgres"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const recordSQL = `
INSERT INTO audit_log (id, update_id, command, argument, user_id, username, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (update_id) DO NOTHING`

// Record appends one audit entry. Returns false without error when the
// update was already recorded by an earlier delivery attempt.
func (r *Repo) Record(ctx context.Context, rec domain.AuditRecord) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	ct, err := querier.Exec(ctx, recordSQL,
		rec.ID,
		rec.UpdateID,
		rec.Command,
		rec.Argument,
		rec.UserID,
		rec.Username,
		createdAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "audit_record", strconv.FormatInt(rec.UpdateID, 10))
	}

	return ct.RowsAffected() > 0, nil
}
