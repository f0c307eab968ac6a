package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

func TestTxManager_RunInTx_Commit(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM search_results`).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCommit()

	tm := NewTxManager(mock)

	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		// The tx placed into the context must be the querier the repo sees.
		querier := QuerierFromCtx(ctx, mock)
		_, execErr := querier.Exec(ctx, `DELETE FROM search_results WHERE chat_id = $1`, int64(42))
		return execErr
	})
	if err != nil {
		t.Fatalf("RunInTx() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTxManager_RunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	mock.ExpectRollback()

	tm := NewTxManager(mock)

	boom := errors.New("boom")
	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTx() error = %v, want %v", err, boom)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestQuerierFromCtx_Fallback(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)

	got := QuerierFromCtx(context.Background(), mock)
	if got != Querier(mock) {
		t.Error("QuerierFromCtx() without tx in context must return the fallback")
	}
}
