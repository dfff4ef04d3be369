package models

// Account is the identity unit for session routing. The account record
// itself is owned by the state store; at most one account is active in the
// process at any time.
type Account struct {
	// UserID is the unique identifier of the account.
	UserID string `json:"userId"`

	// Email is the account email, used to pre-fill the login form after
	// a soft logout.
	Email string `json:"email"`

	// ForcePasswordResetReason is set when the server requires the user
	// to update their master password before proceeding.
	ForcePasswordResetReason *string `json:"forcePasswordResetReason,omitempty"`
}

// OnboardingStatus tracks the progress of a post-registration setup step
// (vault unlock method selection, autofill activation).
type OnboardingStatus int

const (
	// OnboardingComplete means the setup step has been finished or skipped.
	OnboardingComplete OnboardingStatus = iota

	// OnboardingIncomplete means the setup step still has to be shown.
	OnboardingIncomplete
)
