package chatmode

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/boozybot/boozy-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)

	return mock
}

func TestRepo_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(mock pgxmock.PgxPoolIface)
		wantMode    domain.ChatMode
		wantChoices map[string]string
	}{
		{
			name: "missing row means idle",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT mode, choices FROM chat_modes`).
					WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantMode: domain.ModeIdle,
		},
		{
			name: "stored idle",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"mode", "choices"}).
					AddRow("idle", []byte(nil))
				mock.ExpectQuery(`SELECT mode, choices FROM chat_modes`).
					WithArgs(int64(42)).
					WillReturnRows(rows)
			},
			wantMode: domain.ModeIdle,
		},
		{
			name: "awaiting removal with choices",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"mode", "choices"}).
					AddRow("awaiting_removal", []byte(`{"Gin (gin)":"gin"}`))
				mock.ExpectQuery(`SELECT mode, choices FROM chat_modes`).
					WithArgs(int64(42)).
					WillReturnRows(rows)
			},
			wantMode:    domain.ModeAwaitingRemoval,
			wantChoices: map[string]string{"Gin (gin)": "gin"},
		},
		{
			name: "unknown stored mode falls back to idle",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"mode", "choices"}).
					AddRow("legacy_mode", []byte(nil))
				mock.ExpectQuery(`SELECT mode, choices FROM chat_modes`).
					WithArgs(int64(42)).
					WillReturnRows(rows)
			},
			wantMode: domain.ModeIdle,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			repo := New(mock)
			tt.setup(mock)

			session, err := repo.Get(context.Background(), 42)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if session.ChatID != 42 {
				t.Errorf("Get() chat_id = %d, want 42", session.ChatID)
			}
			if session.Mode != tt.wantMode {
				t.Errorf("Get() mode = %q, want %q", session.Mode, tt.wantMode)
			}
			if len(session.Choices) != len(tt.wantChoices) {
				t.Fatalf("Get() choices = %v, want %v", session.Choices, tt.wantChoices)
			}
			for label, code := range tt.wantChoices {
				if session.Choices[label] != code {
					t.Errorf("Get() choices[%q] = %q, want %q", label, session.Choices[label], code)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_Set(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := New(mock)

	mock.ExpectExec(`INSERT INTO chat_modes`).
		WithArgs(int64(42), "awaiting_removal", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	session := domain.ChatSession{
		ChatID:  42,
		Mode:    domain.ModeAwaitingRemoval,
		Choices: map[string]string{"Gin (gin)": "gin"},
	}
	if err := repo.Set(context.Background(), session); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Reset(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := New(mock)

	mock.ExpectExec(`INSERT INTO chat_modes`).
		WithArgs(int64(42), "idle", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Reset(context.Background(), 42); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
