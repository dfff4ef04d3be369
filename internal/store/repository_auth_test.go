// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-warden/internal/crypto"
	"github.com/MKhiriev/go-warden/internal/logger"
)

const testDeviceSecret = "device-secret-for-tests"

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		DB:           &DB{DB: db, logger: l},
		keychain:     crypto.NewKeyChainService(),
		deviceSecret: testDeviceSecret,
		logger:       l,
	}
	return repo, mock, db
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns)
}

func TestActiveAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs(1).
		WillReturnRows(accountRows().AddRow("user-1", "user@example.com", nil))

	account, err := repo.ActiveAccount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.UserID != "user-1" || account.Email != "user@example.com" {
		t.Errorf("unexpected account: %+v", account)
	}
	if account.ForcePasswordResetReason != nil {
		t.Errorf("expected nil reset reason, got %v", *account.ForcePasswordResetReason)
	}
}

func TestActiveAccount_NoActiveRow(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ActiveAccount(context.Background())
	if !errors.Is(err, ErrNoActiveAccount) {
		t.Fatalf("expected ErrNoActiveAccount, got %v", err)
	}
}

func TestAccount_ForceResetReasonSurvivesScan(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs("user-1").
		WillReturnRows(accountRows().AddRow("user-1", "user@example.com", "adminForcePasswordReset"))

	account, err := repo.Account(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ForcePasswordResetReason == nil || *account.ForcePasswordResetReason != "adminForcePasswordReset" {
		t.Errorf("expected reset reason to survive the scan, got %+v", account.ForcePasswordResetReason)
	}
}

func TestAccount_EmptyUserIDResolvesActiveAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// запрос должен идти по active-флагу, а не по user_id = ''
	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs(1).
		WillReturnRows(accountRows().AddRow("user-1", "user@example.com", nil))

	account, err := repo.Account(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.UserID != "user-1" {
		t.Errorf("expected the active account, got %+v", account)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAccount_EmptyUserIDNoActiveRow(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Account(context.Background(), "")
	if !errors.Is(err, ErrNoActiveAccount) {
		t.Fatalf("expected ErrNoActiveAccount, got %v", err)
	}
}

func TestAccount_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Account(context.Background(), "ghost")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccounts_OrderedList(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	rows := accountRows().
		AddRow("user-1", "first@example.com", nil).
		AddRow("user-2", "second@example.com", nil)

	mock.ExpectQuery("SELECT .+ FROM accounts").WillReturnRows(rows)

	accounts, err := repo.Accounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].UserID != "user-1" || accounts[1].UserID != "user-2" {
		t.Errorf("expected store order preserved, got %+v", accounts)
	}
}

func TestSetActiveAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts").
		WithArgs(0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE accounts").
		WithArgs(1, "user-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .+ FROM accounts").
		WithArgs("user-2").
		WillReturnRows(accountRows().AddRow("user-2", "second@example.com", nil))

	account, err := repo.SetActiveAccount(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.UserID != "user-2" {
		t.Errorf("expected user-2 active, got %+v", account)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetActiveAccount_UnknownUserRollsBack(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts").
		WithArgs(0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE accounts").
		WithArgs(1, "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.SetActiveAccount(context.Background(), "ghost")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetActiveAccount_BeginError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err := repo.SetActiveAccount(context.Background(), "user-1")
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestLockVault_SetsManualFlag(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs(1, 1, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.LockVault(context.Background(), "user-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLockVault_UnknownUser(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.LockVault(context.Background(), "ghost", false)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUnlockWithNeverlockKey_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// хелпер-данные: заворачиваем ключ так же, как это делает настройка never-lock
	keychain := repo.keychain
	salt, err := keychain.GenerateSalt()
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}
	vaultKey, err := keychain.GenerateVaultKey()
	if err != nil {
		t.Fatalf("failed to generate vault key: %v", err)
	}
	kek := keychain.DeriveKey(testDeviceSecret, salt)
	wrapped, err := keychain.WrapVaultKey(vaultKey, kek)
	if err != nil {
		t.Fatalf("failed to wrap vault key: %v", err)
	}

	mock.ExpectQuery("SELECT neverlock_salt, neverlock_key FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"neverlock_salt", "neverlock_key"}).AddRow(salt, wrapped))
	mock.ExpectExec("UPDATE accounts").
		WithArgs(0, 0, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UnlockWithNeverlockKey(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUnlockWithNeverlockKey_MissingKey(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT neverlock_salt, neverlock_key FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"neverlock_salt", "neverlock_key"}).AddRow([]byte{}, []byte{}))

	err := repo.UnlockWithNeverlockKey(context.Background(), "user-1")
	if !errors.Is(err, ErrNeverlockKeyMissing) {
		t.Fatalf("expected ErrNeverlockKeyMissing, got %v", err)
	}
}

func TestUnlockWithNeverlockKey_TamperedKeyStaysLocked(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	salt, err := repo.keychain.GenerateSalt()
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}
	tampered := make([]byte, 60) // not a valid wrapped key for this device secret

	mock.ExpectQuery("SELECT neverlock_salt, neverlock_key FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"neverlock_salt", "neverlock_key"}).AddRow(salt, tampered))

	err = repo.UnlockWithNeverlockKey(context.Background(), "user-1")
	if err == nil {
		t.Fatal("expected error for tampered never-lock key, got nil")
	}
	// no UPDATE statement may run when the unwrap fails
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLogout_UserInitiatedDeletesAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Logout(context.Background(), "user-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLogout_TimeoutKeepsAccountRow(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE accounts").
		WithArgs("", 1, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Logout(context.Background(), "user-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestIsLocked(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT locked FROM accounts").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"locked"}).AddRow(true))

	locked, err := repo.IsLocked(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked {
		t.Error("expected locked=true")
	}
}

func TestIsLocked_UnknownUser(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT locked FROM accounts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.IsLocked(context.Background(), "ghost")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
