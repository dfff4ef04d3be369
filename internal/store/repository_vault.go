package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

// vaultItemRepository is the SQLite-backed implementation of
// [VaultItemRepository]. Items are stored decrypted-at-rest inside the
// app sandbox; the login payload lives in a JSON column.
type vaultItemRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) FetchAllItems(ctx context.Context) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.FetchAllItems").Msg("failed to query vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.VaultItem
	for rows.Next() {
		item, err := scanVaultItem(rows)
		if err != nil {
			log.Err(err).Str("func", "vaultItemRepository.FetchAllItems").Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *vaultItemRepository) FetchAllFolders(ctx context.Context) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFoldersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.FetchAllFolders").Msg("failed to query folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.RevisionDate); err != nil {
			log.Err(err).Str("func", "vaultItemRepository.FetchAllFolders").Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func scanVaultItem(rows *sql.Rows) (models.VaultItem, error) {
	var (
		item       models.VaultItem
		loginJSON  sql.NullString
		archivedAt sql.NullTime
		deletedAt  sql.NullTime
	)

	if err := rows.Scan(
		&item.ID,
		&item.Name,
		&item.Type,
		&item.FolderID,
		&item.OrganizationID,
		&item.Notes,
		&loginJSON,
		&archivedAt,
		&deletedAt,
	); err != nil {
		return models.VaultItem{}, err
	}

	if archivedAt.Valid {
		t := archivedAt.Time
		item.ArchivedDate = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		item.DeletedDate = &t
	}
	if loginJSON.Valid && loginJSON.String != "" {
		var login models.LoginItem
		if err := json.Unmarshal([]byte(loginJSON.String), &login); err != nil {
			return models.VaultItem{}, fmt.Errorf("decode login payload: %w", err)
		}
		item.Login = &login
	}

	return item, nil
}
