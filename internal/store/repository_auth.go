package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/crypto"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository]. The never-lock vault key is stored wrapped with a key
// derived from the device secret, so a copied database file alone cannot
// open the vault.
type accountRepository struct {
	*DB
	keychain     crypto.KeyChainService
	deviceSecret string
	logger       *logger.Logger
}

func NewAccountRepository(db *DB, keychain crypto.KeyChainService, deviceSecret string, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:           db,
		keychain:     keychain,
		deviceSecret: deviceSecret,
		logger:       logger,
	}
}

func (r *accountRepository) ActiveAccount(ctx context.Context) (models.Account, error) {
	query, args, err := buildSelectActiveAccountQuery()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := r.scanAccountRow(ctx, query, args)
	if errors.Is(err, ErrAccountNotFound) {
		return models.Account{}, ErrNoActiveAccount
	}
	return account, err
}

func (r *accountRepository) Account(ctx context.Context, userID string) (models.Account, error) {
	// empty userID means "the active account"; lock and logout events
	// come in without an explicit target
	if userID == "" {
		return r.ActiveAccount(ctx)
	}

	query, args, err := buildSelectAccountQuery(userID)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scanAccountRow(ctx, query, args)
}

func (r *accountRepository) Accounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Accounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// SetActiveAccount moves the active flag to userID inside a single
// transaction, so there is never a moment with two active rows.
func (r *accountRepository) SetActiveAccount(ctx context.Context, userID string) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	clearQuery, clearArgs, err := buildClearActiveFlagQuery()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	setQuery, setArgs, err := buildSetActiveFlagQuery(userID)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, setQuery, setArgs...)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return models.Account{}, ErrAccountNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.SetActiveAccount").Str("user_id", userID).Msg("failed to commit active account switch")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r.Account(ctx, userID)
}

func (r *accountRepository) LockVault(ctx context.Context, userID string, isManuallyLocking bool) error {
	query, args, err := buildLockVaultQuery(userID, isManuallyLocking)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOnAccount(ctx, query, args, "accountRepository.LockVault")
}

// UnlockWithNeverlockKey unwraps the stored vault key with a KEK derived
// from the device secret. Only when the unwrap authenticates is the lock
// state cleared.
func (r *accountRepository) UnlockWithNeverlockKey(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNeverlockKeyQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt, wrapped []byte
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&salt, &wrapped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if len(salt) == 0 || len(wrapped) == 0 {
		return ErrNeverlockKeyMissing
	}

	kek := r.keychain.DeriveKey(r.deviceSecret, salt)
	if _, err := r.keychain.UnwrapVaultKey(wrapped, kek); err != nil {
		log.Err(err).Str("func", "accountRepository.UnlockWithNeverlockKey").Str("user_id", userID).Msg("failed to unwrap never-lock key")
		return fmt.Errorf("unwrap never-lock key: %w", err)
	}

	unlockQuery, unlockArgs, err := buildUnlockVaultQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOnAccount(ctx, unlockQuery, unlockArgs, "accountRepository.UnlockWithNeverlockKey")
}

// Logout removes the account entirely when the user asked for it; a
// timeout-driven logout only revokes the session so the email can pre-fill
// the next login.
func (r *accountRepository) Logout(ctx context.Context, userID string, userInitiated bool) error {
	var (
		query string
		args  []any
		err   error
	)
	if userInitiated {
		query, args, err = buildDeleteAccountQuery(userID)
	} else {
		query, args, err = buildSoftLogoutQuery(userID)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOnAccount(ctx, query, args, "accountRepository.Logout")
}

func (r *accountRepository) IsLocked(ctx context.Context, userID string) (bool, error) {
	query, args, err := buildSelectAccountFieldQuery("locked", userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var locked bool
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrAccountNotFound
		}
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return locked, nil
}

func (r *accountRepository) execOnAccount(ctx context.Context, query string, args []any, funcName string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) scanAccountRow(ctx context.Context, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, args...)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "accountRepository.scanAccountRow").Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return account, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account     models.Account
		resetReason sql.NullString
	)
	if err := row.Scan(&account.UserID, &account.Email, &resetReason); err != nil {
		return models.Account{}, err
	}
	if resetReason.Valid {
		reason := resetReason.String
		account.ForcePasswordResetReason = &reason
	}
	return account, nil
}
