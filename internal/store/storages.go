package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/crypto"
	"github.com/MKhiriev/go-warden/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Vault is the SQLite-backed read layer for decrypted vault items
	// and folders.
	Vault VaultItemRepository

	// Accounts owns the account rows, the active flag, and the lock
	// state including never-lock unlocks.
	Accounts AccountRepository

	// State owns the app-wide and per-account flags the session router
	// consults.
	State AccountStateRepository

	// Timeout owns the session timeout policy and last-active stamps.
	Timeout TimeoutRepository
}

// NewStorages initialises the local storage layer. It opens (creating if
// needed) the SQLite database at cfg.DB.DSN, runs pending schema migrations,
// and wires every repository to the shared connection.
//
// rehydrationSource may be nil; see [NewStateRepository].
func NewStorages(
	cfg config.ClientStorage,
	keychain crypto.KeyChainService,
	deviceSecret string,
	rehydrationSource func() string,
	log *logger.Logger,
) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Vault:    NewVaultItemRepository(db, log),
		Accounts: NewAccountRepository(db, keychain, deviceSecret, log),
		State:    NewStateRepository(db, rehydrationSource, log),
		Timeout:  NewTimeoutRepository(db, log),
	}, nil
}
