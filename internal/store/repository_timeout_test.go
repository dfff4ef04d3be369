package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

func newTestTimeoutRepo(t *testing.T) (*timeoutRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &timeoutRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSessionTimeoutValue_Interval(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT timeout_seconds FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"timeout_seconds"}).AddRow(int64(900)))

	value, err := repo.SessionTimeoutValue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value.Duration() != 15*time.Minute {
		t.Errorf("expected 15m timeout, got %v", value.Duration())
	}
	if value.IsNever() {
		t.Error("expected a finite interval")
	}
}

func TestSessionTimeoutValue_NegativeMeansNever(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT timeout_seconds FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"timeout_seconds"}).AddRow(int64(-1)))

	value, err := repo.SessionTimeoutValue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.IsNever() {
		t.Errorf("expected never timeout, got %v", value)
	}
}

func TestSessionTimeoutAction(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT timeout_action FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"timeout_action"}).AddRow(int(models.TimeoutActionLogout)))

	action, err := repo.SessionTimeoutAction(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != models.TimeoutActionLogout {
		t.Errorf("expected logout action, got %v", action)
	}
}

func TestSetLastActiveTime_StoresUTC(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	msk := time.FixedZone("MSK", 3*60*60)
	local := time.Date(2024, 2, 14, 12, 0, 0, 0, msk)

	mock.ExpectExec("UPDATE accounts").
		WithArgs(local.UTC(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetLastActiveTime(context.Background(), "user-1", local); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetLastActiveTime_UnknownUser(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetLastActiveTime(context.Background(), "ghost", time.Now())
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestLastActiveTime(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	stamp := time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT last_active_at FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_active_at"}).AddRow(stamp))

	got, err := repo.LastActiveTime(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(stamp) {
		t.Errorf("expected %v, got %v", stamp, got)
	}
}

func TestLastActiveTime_NeverRecorded(t *testing.T) {
	repo, mock, db := newTestTimeoutRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT last_active_at FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_active_at"}).AddRow(nil))

	got, err := repo.LastActiveTime(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time for never-recorded activity, got %v", got)
	}
}
