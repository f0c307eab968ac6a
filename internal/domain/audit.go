package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only audit log entry: who invoked which command
// with which argument. UpdateID is the idempotency key — the queue delivers
// at least once, and a redelivered update must not produce a second record.
type AuditRecord struct {
	ID        uuid.UUID
	UpdateID  int64
	Command   string
	Argument  string
	UserID    int64
	Username  string
	CreatedAt time.Time
}
