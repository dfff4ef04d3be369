package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/utils"
	"github.com/MKhiriev/go-warden/models"
)

// introCarouselShownKey is the app_state row recording that the first-run
// carousel has been presented once on this device.
const introCarouselShownKey = "intro_carousel_shown"

// stateRepository is the SQLite-backed implementation of
// [AccountStateRepository]. App-wide flags live in the app_state key/value
// table; per-account flags live on the account row.
type stateRepository struct {
	*DB
	// rehydrationSource reports the navigation target to save when an
	// interruption is about to replace the current screen. Nil when the
	// host has no notion of a current screen (e.g. CLI runs).
	rehydrationSource func() string
	logger            *logger.Logger
}

func NewStateRepository(db *DB, rehydrationSource func() string, logger *logger.Logger) AccountStateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		DB:                db,
		rehydrationSource: rehydrationSource,
		logger:            logger,
	}
}

// IntroCarouselShown treats any read failure as "already shown" so a broken
// state row can never trap the user in the carousel.
func (r *stateRepository) IntroCarouselShown(ctx context.Context) bool {
	query, args, err := buildSelectStateValueQuery(introCarouselShownKey)
	if err != nil {
		return true
	}

	var value string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false
		}
		logger.FromContext(ctx).Err(err).Str("func", "stateRepository.IntroCarouselShown").Msg("failed to read carousel flag")
		return true
	}
	return value == "true"
}

func (r *stateRepository) SetIntroCarouselShown(ctx context.Context, shown bool) error {
	value := "false"
	if shown {
		value = "true"
	}

	query, args, err := buildUpsertStateValueQuery(introCarouselShownKey, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *stateRepository) ManuallyLockedAccount(ctx context.Context, userID string) (bool, error) {
	var manuallyLocked bool
	if err := r.scanAccountField(ctx, "manually_locked", userID, &manuallyLocked); err != nil {
		return false, err
	}
	return manuallyLocked, nil
}

// IsAuthenticated reports whether the account still holds a live session
// token. An empty token means the account was soft-logged-out.
func (r *stateRepository) IsAuthenticated(ctx context.Context, userID string) (bool, error) {
	var token string
	if err := r.scanAccountField(ctx, "session_token", userID, &token); err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}

	active, err := utils.TokenActive(token)
	if err != nil {
		return false, fmt.Errorf("inspect session token: %w", err)
	}
	return active, nil
}

func (r *stateRepository) AccountSetupVaultUnlock(ctx context.Context, userID string) (models.OnboardingStatus, error) {
	return r.onboardingStatus(ctx, "setup_vault_unlock", userID)
}

func (r *stateRepository) AccountSetupAutofill(ctx context.Context, userID string) (models.OnboardingStatus, error) {
	return r.onboardingStatus(ctx, "setup_autofill", userID)
}

func (r *stateRepository) RehydrationTarget(ctx context.Context, userID string) (string, error) {
	var target string
	if err := r.scanAccountField(ctx, "rehydration_target", userID, &target); err != nil {
		return "", err
	}
	return target, nil
}

// SaveRehydrationStateIfNeeded persists the current navigation target for
// the active account. A nil source or an empty target is a no-op.
func (r *stateRepository) SaveRehydrationStateIfNeeded(ctx context.Context) error {
	if r.rehydrationSource == nil {
		return nil
	}
	target := r.rehydrationSource()
	if target == "" {
		return nil
	}

	query, args, err := buildUpdateRehydrationTargetForActiveQuery(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *stateRepository) onboardingStatus(ctx context.Context, column, userID string) (models.OnboardingStatus, error) {
	var complete bool
	if err := r.scanAccountField(ctx, column, userID, &complete); err != nil {
		return models.OnboardingIncomplete, err
	}
	if complete {
		return models.OnboardingComplete, nil
	}
	return models.OnboardingIncomplete, nil
}

func (r *stateRepository) scanAccountField(ctx context.Context, column, userID string, dest any) error {
	query, args, err := buildSelectAccountFieldQuery(column, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "stateRepository.scanAccountField").Str("column", column).Msg("failed to scan account field")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}
