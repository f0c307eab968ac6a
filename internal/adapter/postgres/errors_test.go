package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boozybot/boozy-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "ingredient", "rum-001"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "ingredient", "rum-001")
	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "ingredient rum-001: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	if got := MapError(wrapped, "chat_mode", "42"); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", "23505", domain.ErrAlreadyExists},
		{"foreign key violation", "23503", domain.ErrNotFound},
		{"check violation", "23514", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pgErr := &pgconn.PgError{Code: tt.code}
			got := MapError(pgErr, "ingredient", "rum-001")
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(code %s) = %v, want wrapping %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextPassthrough(t *testing.T) {
	t.Parallel()

	got := MapError(context.DeadlineExceeded, "audit", "7")
	if !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("context error was remapped: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Errorf("context error mapped to domain error: %v", got)
	}
}

func TestMapError_Unknown(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("connection reset")
	got := MapError(sentinel, "search_result", "42")
	if !errors.Is(got, sentinel) {
		t.Errorf("unknown error not wrapped: %v", got)
	}
}
