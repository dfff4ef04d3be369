package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

// defaultExportPrefix is used when the caller does not supply a filename
// prefix.
const defaultExportPrefix = "bitwarden"

// exportTimestampLayout renders a 14-digit lexically sortable UTC timestamp.
const exportTimestampLayout = "20060102150405"

type exportService struct {
	store     VaultItemStore
	policy    PolicyService
	flags     FeatureFlagService
	exporter  Exporter
	clock     TimeProvider
	exportDir string
	logger    *logger.Logger
}

// NewExportService constructs the export coordinator. exportDir is where
// WriteToFile places generated files; it is created on first write.
func NewExportService(
	store VaultItemStore,
	policy PolicyService,
	flags FeatureFlagService,
	exporter Exporter,
	clock TimeProvider,
	exportDir string,
	log *logger.Logger,
) ExportService {
	if log == nil {
		log = logger.Nop()
	}
	return &exportService{
		store:     store,
		policy:    policy,
		flags:     flags,
		exporter:  exporter,
		clock:     clock,
		exportDir: exportDir,
		logger:    log,
	}
}

func (s *exportService) FetchItemsToExport(ctx context.Context, includeArchived bool) ([]models.VaultItem, error) {
	items, _, err := s.fetchExportSet(ctx, includeArchived)
	return items, err
}

// fetchExportSet retrieves items and folders together so a partial failure
// aborts the whole export, and applies the deletion, archival, and policy
// filters to the items. Filtering is stable: the store's ordering survives.
func (s *exportService) fetchExportSet(ctx context.Context, includeArchived bool) ([]models.VaultItem, []models.Folder, error) {
	items, err := s.store.FetchAllItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fetch all items: %w", ErrFetch, err)
	}

	folders, err := s.store.FetchAllFolders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: fetch all folders: %w", ErrFetch, err)
	}

	// Resolve the archive policy once, up front. The flag decides whether
	// archival filtering is honored at all; only then does the caller's
	// preference matter.
	archiveFilterHonored := s.flags.BoolFlag(ctx, FlagArchiveVaultItems, false)
	dropArchived := archiveFilterHonored && !includeArchived

	restricted := make(map[models.ItemType]struct{})
	for _, t := range s.policy.RestrictedItemTypes(ctx) {
		restricted[t] = struct{}{}
	}

	filtered := make([]models.VaultItem, 0, len(items))
	for _, item := range items {
		if item.DeletedDate != nil {
			continue
		}
		if dropArchived && item.ArchivedDate != nil {
			continue
		}
		if _, ok := restricted[item.Type]; ok {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered, folders, nil
}

func (s *exportService) ExportFileContents(ctx context.Context, format models.ExportFormat, includeArchived bool) (string, error) {
	items, folders, err := s.fetchExportSet(ctx, includeArchived)
	if err != nil {
		return "", err
	}

	// CSV has no schema for anything but logins and secure notes. This
	// filter composes with, and runs after, the policy and archive
	// filters above.
	if format.Kind == models.ExportFormatCSV {
		csvItems := make([]models.VaultItem, 0, len(items))
		for _, item := range items {
			if item.Type == models.ItemTypeLogin || item.Type == models.ItemTypeSecureNote {
				csvItems = append(csvItems, item)
			}
		}
		items = csvItems
	}

	payload, err := s.exporter.Serialize(folders, items, format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	s.logger.Debug().
		Int("items", len(items)).
		Int("folders", len(folders)).
		Str("ext", format.FileExtension()).
		Msg("vault export serialized")

	return payload, nil
}

func (s *exportService) GenerateExportFileName(prefix string, format models.ExportFormat) string {
	if prefix == "" {
		prefix = defaultExportPrefix
	}
	stamp := s.clock.Now().UTC().Format(exportTimestampLayout)
	return fmt.Sprintf("%s_export_%s.%s", prefix, stamp, format.FileExtension())
}

func (s *exportService) WriteToFile(name, content string) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

func (s *exportService) ClearTemporaryFiles() {
	entries, err := os.ReadDir(s.exportDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Err(err).Msg("read export dir for cleanup")
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.exportDir, entry.Name())); err != nil {
			s.logger.Err(err).Str("file", entry.Name()).Msg("remove temporary export file")
		}
	}
}
