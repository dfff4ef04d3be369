package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

// timeoutRepository is the SQLite-backed implementation of
// [TimeoutRepository]. The timeout interval is stored in whole seconds with
// -1 meaning "never".
type timeoutRepository struct {
	*DB
	logger *logger.Logger
}

func NewTimeoutRepository(db *DB, logger *logger.Logger) TimeoutRepository {
	logger.Debug().Msg("creating timeout repository")
	return &timeoutRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *timeoutRepository) SessionTimeoutValue(ctx context.Context, userID string) (models.SessionTimeoutValue, error) {
	var seconds int64
	if err := r.scanField(ctx, "timeout_seconds", userID, &seconds); err != nil {
		return 0, err
	}
	if seconds < 0 {
		return models.TimeoutNever, nil
	}
	return models.SessionTimeoutValue(time.Duration(seconds) * time.Second), nil
}

func (r *timeoutRepository) SessionTimeoutAction(ctx context.Context, userID string) (models.TimeoutAction, error) {
	var action int
	if err := r.scanField(ctx, "timeout_action", userID, &action); err != nil {
		return models.TimeoutActionLock, err
	}
	return models.TimeoutAction(action), nil
}

func (r *timeoutRepository) SetLastActiveTime(ctx context.Context, userID string, t time.Time) error {
	query, args, err := buildUpdateAccountFieldQuery("last_active_at", t.UTC(), userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "timeoutRepository.SetLastActiveTime").Str("user_id", userID).Msg("failed to stamp last active time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *timeoutRepository) LastActiveTime(ctx context.Context, userID string) (time.Time, error) {
	query, args, err := buildSelectAccountFieldQuery("last_active_at", userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lastActive sql.NullTime
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&lastActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrAccountNotFound
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !lastActive.Valid {
		return time.Time{}, nil
	}
	return lastActive.Time, nil
}

func (r *timeoutRepository) scanField(ctx context.Context, column, userID string, dest any) error {
	query, args, err := buildSelectAccountFieldQuery(column, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "timeoutRepository.scanField").Str("column", column).Msg("failed to scan timeout field")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}
