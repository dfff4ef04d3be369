// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// vaultItemColumns is the canonical column list of the vault_items table.
var vaultItemColumns = []string{
	"id",
	"name",
	"type",
	"folder_id",
	"organization_id",
	"notes",
	"login",
	"archived_at",
	"deleted_at",
}

// accountColumns is the canonical column list read for a full account row.
var accountColumns = []string{
	"user_id",
	"email",
	"force_reset_reason",
}

// SQLite binds positional parameters as "?", which is squirrel's default
// placeholder format, so no PlaceholderFormat override is needed.

func buildSelectVaultItemsQuery() (string, []any, error) {
	return sq.Select(vaultItemColumns...).
		From("vault_items").
		OrderBy("name COLLATE NOCASE", "id").
		ToSql()
}

func buildSelectFoldersQuery() (string, []any, error) {
	return sq.Select("id", "name", "revision_date").
		From("folders").
		OrderBy("name COLLATE NOCASE").
		ToSql()
}

func buildSelectAccountQuery(userID string) (string, []any, error) {
	return sq.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectActiveAccountQuery() (string, []any, error) {
	return sq.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"active": 1}).
		ToSql()
}

func buildSelectAccountsQuery() (string, []any, error) {
	// most recently active first; never-used accounts sort last because
	// sqlite treats NULL as smaller than any timestamp
	return sq.Select(accountColumns...).
		From("accounts").
		OrderBy("last_active_at DESC").
		ToSql()
}

func buildClearActiveFlagQuery() (string, []any, error) {
	return sq.Update("accounts").
		Set("active", 0).
		ToSql()
}

func buildSetActiveFlagQuery(userID string) (string, []any, error) {
	return sq.Update("accounts").
		Set("active", 1).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildLockVaultQuery(userID string, manual bool) (string, []any, error) {
	return sq.Update("accounts").
		Set("locked", 1).
		Set("manually_locked", boolToInt(manual)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUnlockVaultQuery(userID string) (string, []any, error) {
	return sq.Update("accounts").
		Set("locked", 0).
		Set("manually_locked", 0).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectNeverlockKeyQuery(userID string) (string, []any, error) {
	return sq.Select("neverlock_salt", "neverlock_key").
		From("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSoftLogoutQuery revokes the local session but keeps the account row,
// so the landing screen can pre-fill the email.
func buildSoftLogoutQuery(userID string) (string, []any, error) {
	return sq.Update("accounts").
		Set("session_token", "").
		Set("locked", 1).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteAccountQuery(userID string) (string, []any, error) {
	return sq.Delete("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSelectAccountFieldQuery reads a single column from an account row.
// column must come from a compile-time constant, never from user input.
func buildSelectAccountFieldQuery(column, userID string) (string, []any, error) {
	return sq.Select(column).
		From("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateAccountFieldQuery(column string, value any, userID string) (string, []any, error) {
	return sq.Update("accounts").
		Set(column, value).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateRehydrationTargetForActiveQuery(target string) (string, []any, error) {
	return sq.Update("accounts").
		Set("rehydration_target", target).
		Where(sq.Eq{"active": 1}).
		ToSql()
}

func buildSelectStateValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From("app_state").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertStateValueQuery(key, value string) (string, []any, error) {
	return sq.Insert("app_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
