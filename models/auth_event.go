package models

// AuthEventKind enumerates the auth-affecting events the router reacts to.
type AuthEventKind int

const (
	// EventDidStart fires on app start, before any screen is shown.
	EventDidStart AuthEventKind = iota

	// EventDidComplete fires when an auth flow (login, unlock) finishes.
	EventDidComplete

	// EventAccountBecameActive fires when an account becomes the active
	// one and its unlock state must be (re-)evaluated.
	EventAccountBecameActive

	// EventDidTimeout fires when the externally driven timeout detection
	// decides a user's session has expired.
	EventDidTimeout

	// EventDidLogout fires after a logout has already happened elsewhere
	// (e.g. token revoked by the server) and routing must catch up.
	EventDidLogout

	// EventRequestLogout fires when a logout should be performed and then
	// routed for.
	EventRequestLogout

	// EventLockVault fires when a user's vault should be locked and then
	// routed for.
	EventLockVault

	// EventSwitchAccount fires when the active account should change.
	EventSwitchAccount
)

// AuthEvent is an auth-affecting event together with its payload. Kind
// selects the event; the remaining fields carry the payload relevant to
// that event and are zero otherwise.
type AuthEvent struct {
	Kind AuthEventKind

	// UserID identifies the subject account for timeout, logout, lock and
	// switch events. Empty means "whichever account is active".
	UserID string

	// Account is the account that became active
	// (EventAccountBecameActive only).
	Account Account

	// UserInitiated reports whether a user action triggered the event.
	// A user-initiated logout may switch to the next available account.
	UserInitiated bool

	// IsManuallyLocking marks an explicit lock request from the user, as
	// opposed to a timeout lock (EventLockVault only).
	IsManuallyLocking bool

	// IsAutomatic marks an account switch the app performed on its own
	// (EventSwitchAccount only).
	IsAutomatic bool

	// AttemptAutomaticBiometricUnlock is carried into the resulting
	// unlock route (EventAccountBecameActive only).
	AttemptAutomaticBiometricUnlock bool

	// DidSwitchAccountAutomatically is carried into the resulting unlock
	// route (EventAccountBecameActive only).
	DidSwitchAccountAutomatically bool
}
