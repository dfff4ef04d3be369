package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-warden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// VaultItemRepository is the low-level local vault read layer.
type VaultItemRepository interface {
	FetchAllItems(ctx context.Context) ([]models.VaultItem, error)
	FetchAllFolders(ctx context.Context) ([]models.Folder, error)
}

// AccountRepository owns the local account rows and their lock state.
type AccountRepository interface {
	ActiveAccount(ctx context.Context) (models.Account, error)
	Account(ctx context.Context, userID string) (models.Account, error)
	Accounts(ctx context.Context) ([]models.Account, error)
	SetActiveAccount(ctx context.Context, userID string) (models.Account, error)
	LockVault(ctx context.Context, userID string, isManuallyLocking bool) error
	UnlockWithNeverlockKey(ctx context.Context, userID string) error
	Logout(ctx context.Context, userID string, userInitiated bool) error
	IsLocked(ctx context.Context, userID string) (bool, error)
}

// AccountStateRepository reads and writes per-account and app-wide state
// flags consulted by the session router.
type AccountStateRepository interface {
	IntroCarouselShown(ctx context.Context) bool
	SetIntroCarouselShown(ctx context.Context, shown bool) error
	ManuallyLockedAccount(ctx context.Context, userID string) (bool, error)
	IsAuthenticated(ctx context.Context, userID string) (bool, error)
	AccountSetupVaultUnlock(ctx context.Context, userID string) (models.OnboardingStatus, error)
	AccountSetupAutofill(ctx context.Context, userID string) (models.OnboardingStatus, error)
	RehydrationTarget(ctx context.Context, userID string) (string, error)
	SaveRehydrationStateIfNeeded(ctx context.Context) error
}

// TimeoutRepository owns the per-account session timeout policy and the
// last-active timestamps the timeout watcher compares against.
type TimeoutRepository interface {
	SessionTimeoutValue(ctx context.Context, userID string) (models.SessionTimeoutValue, error)
	SessionTimeoutAction(ctx context.Context, userID string) (models.TimeoutAction, error)
	SetLastActiveTime(ctx context.Context, userID string, t time.Time) error
	LastActiveTime(ctx context.Context, userID string) (time.Time, error)
}
