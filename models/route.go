package models

// RouteKind enumerates the navigation targets the auth router can resolve.
type RouteKind int

const (
	// RouteLanding shows the landing screen with no account pre-selected.
	RouteLanding RouteKind = iota

	// RouteIntroCarousel shows the first-run intro carousel.
	RouteIntroCarousel

	// RouteComplete dismisses the auth flow; the vault is available.
	RouteComplete

	// RouteCompleteWithNeverUnlock dismisses the auth flow after the vault
	// was unlocked automatically with the never-lock key.
	RouteCompleteWithNeverUnlock

	// RouteCompleteWithRehydration dismisses the auth flow and resumes the
	// navigation target saved before the interrupting auth flow started.
	RouteCompleteWithRehydration

	// RouteUpdateMasterPassword forces a master password update before the
	// vault can be used.
	RouteUpdateMasterPassword

	// RouteVaultUnlockSetup shows the unlock-method onboarding step.
	RouteVaultUnlockSetup

	// RouteAutofillSetup shows the autofill onboarding step.
	RouteAutofillSetup

	// RouteVaultUnlock presents the unlock screen for the active account.
	RouteVaultUnlock

	// RouteLandingSoftLoggedOut shows the landing screen with the email of
	// a soft-logged-out account pre-filled.
	RouteLandingSoftLoggedOut
)

// String returns the route name used in logs.
func (k RouteKind) String() string {
	switch k {
	case RouteLanding:
		return "landing"
	case RouteIntroCarousel:
		return "introCarousel"
	case RouteComplete:
		return "complete"
	case RouteCompleteWithNeverUnlock:
		return "completeWithNeverUnlock"
	case RouteCompleteWithRehydration:
		return "completeWithRehydration"
	case RouteUpdateMasterPassword:
		return "updateMasterPassword"
	case RouteVaultUnlockSetup:
		return "vaultUnlockSetup"
	case RouteAutofillSetup:
		return "autofillSetup"
	case RouteVaultUnlock:
		return "vaultUnlock"
	case RouteLandingSoftLoggedOut:
		return "landingSoftLoggedOut"
	default:
		return "unknown"
	}
}

// Route is a resolved navigation decision. Kind selects the target; the
// remaining fields carry the payload relevant to that target and are zero
// otherwise.
type Route struct {
	Kind RouteKind

	// Account is the account the unlock screen is presented for
	// (RouteVaultUnlock only).
	Account Account

	// Email pre-fills the login form (RouteLandingSoftLoggedOut only).
	Email string

	// RehydrationTarget is the saved destination to resume
	// (RouteCompleteWithRehydration only).
	RehydrationTarget string

	// AttemptAutomaticBiometricUnlock tells the unlock screen to try
	// biometrics without waiting for a tap (RouteVaultUnlock only).
	AttemptAutomaticBiometricUnlock bool

	// DidSwitchAccountAutomatically is set when the router switched the
	// active account without an explicit user action (RouteVaultUnlock
	// only).
	DidSwitchAccountAutomatically bool
}

// Landing returns the plain landing route.
func Landing() Route { return Route{Kind: RouteLanding} }

// Complete returns the plain completion route.
func Complete() Route { return Route{Kind: RouteComplete} }

// SoftLoggedOut returns the soft-logout landing route with email pre-filled.
func SoftLoggedOut(email string) Route {
	return Route{Kind: RouteLandingSoftLoggedOut, Email: email}
}

// VaultUnlock returns the unlock-screen route for account.
func VaultUnlock(account Account, attemptBiometrics, didSwitchAutomatically bool) Route {
	return Route{
		Kind:                            RouteVaultUnlock,
		Account:                         account,
		AttemptAutomaticBiometricUnlock: attemptBiometrics,
		DidSwitchAccountAutomatically:   didSwitchAutomatically,
	}
}
