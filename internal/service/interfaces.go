// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-warden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// FlagArchiveVaultItems gates whether archival filtering is honored during
// export at all. When the flag is off, archived items are always included
// regardless of the caller's preference.
const FlagArchiveVaultItems = "archive-vault-items"

// ExportService produces the exact set of plaintext-exportable vault items
// and the serialized payload to persist, honoring format, archival, and
// organization-policy constraints.
type ExportService interface {
	// FetchItemsToExport retrieves all items and folders from the vault
	// store and returns the items that may appear in an export:
	// soft-deleted items are always dropped; archived items are dropped
	// only when the archive feature flag is on and includeArchived is
	// false; items whose type the organization policy restricts are
	// dropped. The original fetch ordering is preserved.
	// Any store failure short-circuits with an error matching ErrFetch.
	FetchItemsToExport(ctx context.Context, includeArchived bool) ([]models.VaultItem, error)

	// ExportFileContents runs FetchItemsToExport, additionally restricts
	// the set to login and secure note items when format is CSV, and
	// delegates serialization of (folders, items, format) to the
	// exporter. The serialized payload is returned untouched. Exporter
	// failures match ErrSerialize, fetch failures match ErrFetch.
	ExportFileContents(ctx context.Context, format models.ExportFormat, includeArchived bool) (string, error)

	// GenerateExportFileName returns
	// "<prefix>_export_<YYYYMMDDHHMMSS>.<ext>" where the timestamp is the
	// injected time source's current UTC instant. An empty prefix
	// defaults to "bitwarden". Two calls at the same instant yield the
	// same name.
	GenerateExportFileName(prefix string, format models.ExportFormat) string

	// WriteToFile writes content verbatim into the configured export
	// directory under name and returns the full path of the written file.
	WriteToFile(name, content string) (string, error)

	// ClearTemporaryFiles removes previously written export files.
	// Removal is best effort; failures are logged, never returned.
	ClearTemporaryFiles()
}

// AuthRouter is the session redirect decision function. It maps an
// auth-affecting event together with the current account/session state to a
// navigation target. HandleAndRoute never fails: routing errors are logged
// and collapse to a safe route (landing or soft logout), so the caller is
// never left on a stale authenticated screen.
type AuthRouter interface {
	HandleAndRoute(ctx context.Context, event models.AuthEvent) models.Route
}

// VaultItemStore retrieves the decrypted item and folder sets. Decryption
// itself happens inside the vault SDK; this interface only exposes the
// already-decrypted records.
type VaultItemStore interface {
	FetchAllItems(ctx context.Context) ([]models.VaultItem, error)
	FetchAllFolders(ctx context.Context) ([]models.Folder, error)
}

// PolicyService resolves the organization policy restrictions for the
// current context.
type PolicyService interface {
	// RestrictedItemTypes returns the item types the active organization
	// policy disallows from export. An empty result means no restriction.
	RestrictedItemTypes(ctx context.Context) []models.ItemType
}

// FeatureFlagService resolves remotely configured boolean feature flags.
type FeatureFlagService interface {
	// BoolFlag returns the value of the named flag, or defaultValue when
	// the flag is unknown.
	BoolFlag(ctx context.Context, name string, defaultValue bool) bool
}

// Exporter serializes a filtered vault snapshot into the requested format.
// The export service never inspects or mutates the serialized payload.
type Exporter interface {
	Serialize(folders []models.Folder, items []models.VaultItem, format models.ExportFormat) (string, error)
}

// TimeProvider supplies the current instant. Injecting it instead of
// reading the wall clock keeps filename generation and timeout decisions
// reproducible in tests.
type TimeProvider interface {
	Now() time.Time
}

// AuthRepository owns the process-wide active-account state and the
// per-account lock/session lifecycle. Activation is a transactional swap;
// no partial state is ever visible to callers.
type AuthRepository interface {
	// ActiveAccount returns the currently active account or an error
	// matching ErrNoActiveAccount.
	ActiveAccount(ctx context.Context) (models.Account, error)

	// Account returns the account identified by userID. An empty userID
	// resolves to the active account.
	Account(ctx context.Context, userID string) (models.Account, error)

	// Accounts returns all locally known accounts, most recently active
	// first.
	Accounts(ctx context.Context) ([]models.Account, error)

	// SetActiveAccount activates the account identified by userID and
	// returns it.
	SetActiveAccount(ctx context.Context, userID string) (models.Account, error)

	// LockVault locks the vault of the given user. isManuallyLocking
	// records whether the user locked it explicitly rather than through a
	// timeout.
	LockVault(ctx context.Context, userID string, isManuallyLocking bool) error

	// UnlockWithNeverlockKey decrypts the user's vault with the locally
	// stored never-lock key, without user interaction.
	UnlockWithNeverlockKey(ctx context.Context, userID string) error

	// Logout revokes the user's local session. userInitiated records
	// whether a user action triggered the logout.
	Logout(ctx context.Context, userID string, userInitiated bool) error

	// IsLocked reports whether the user's vault is currently locked.
	IsLocked(ctx context.Context, userID string) (bool, error)
}

// StateService exposes the persisted per-account and app-level state flags
// the router consults.
type StateService interface {
	// IntroCarouselShown reports whether the first-run carousel has been
	// shown at least once.
	IntroCarouselShown(ctx context.Context) bool

	// SetIntroCarouselShown records that the carousel was shown (or no
	// longer needs to be shown because accounts already exist).
	SetIntroCarouselShown(ctx context.Context, shown bool) error

	// ManuallyLockedAccount reports whether the user locked the vault
	// explicitly, as opposed to a timeout lock.
	ManuallyLockedAccount(ctx context.Context, userID string) (bool, error)

	// IsAuthenticated reports whether the user holds a valid, unexpired
	// session token.
	IsAuthenticated(ctx context.Context, userID string) (bool, error)

	// AccountSetupVaultUnlock returns the progress of the unlock-method
	// onboarding step.
	AccountSetupVaultUnlock(ctx context.Context, userID string) (models.OnboardingStatus, error)

	// AccountSetupAutofill returns the progress of the autofill
	// onboarding step.
	AccountSetupAutofill(ctx context.Context, userID string) (models.OnboardingStatus, error)

	// RehydrationTarget returns the saved navigation destination to
	// resume after an interrupting auth flow, or "" when none is saved.
	RehydrationTarget(ctx context.Context, userID string) (string, error)

	// SaveRehydrationStateIfNeeded snapshots the current navigation
	// destination so it can be resumed after the upcoming auth flow.
	SaveRehydrationStateIfNeeded(ctx context.Context) error
}

// VaultTimeoutService owns the per-user timeout configuration and activity
// timestamps. Timeout detection itself is driven externally; the router
// only applies the configured consequence.
type VaultTimeoutService interface {
	// SessionTimeoutValue returns the user's timeout interval, which may
	// be models.TimeoutNever.
	SessionTimeoutValue(ctx context.Context, userID string) (models.SessionTimeoutValue, error)

	// SessionTimeoutAction returns the consequence configured for the
	// user's timeout expiry.
	SessionTimeoutAction(ctx context.Context, userID string) (models.TimeoutAction, error)

	// SetLastActiveTime stamps the user's last activity instant, used by
	// the auto-switch heuristics on relaunch and by timeout detection.
	SetLastActiveTime(ctx context.Context, userID string, t time.Time) error

	// LastActiveTime returns the user's last recorded activity instant.
	LastActiveTime(ctx context.Context, userID string) (time.Time, error)
}
