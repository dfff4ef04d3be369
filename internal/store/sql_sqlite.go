package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
)

// NewConnectSQLite opens (creating if needed) the local SQLite database at
// cfg.DSN and verifies the connection with a ping. The parent directory of
// the DB file is created as well, so a fresh install can point the DSN into
// a not-yet-existing data dir.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("failed to create database file")
		return nil, fmt.Errorf("create database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("failed to open database")
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("failed to ping database")
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to local database")

	return &DB{DB: conn, logger: log}, nil
}

// ensureDBFile creates the DB file (and its directory) when it does not
// exist yet. sqlite would create the file on first write anyway, but doing
// it eagerly surfaces permission problems at startup instead of mid-command.
func ensureDBFile(path string) error {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return f.Close()
}
