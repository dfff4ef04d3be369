package service

import (
	"context"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

// authRouter resolves auth events to navigation routes. It keeps no state
// of its own: every decision re-reads the repositories right before acting
// so concurrent logout/switch triggers elsewhere are never acted on stale.
type authRouter struct {
	auth    AuthRepository
	state   StateService
	timeout VaultTimeoutService
	clock   TimeProvider

	// isExtensionContext is true when running inside a host extension
	// (autofill provider, share sheet). Carousel, onboarding and
	// rehydration routes are suppressed there.
	isExtensionContext bool

	logger *logger.Logger
}

// NewAuthRouter constructs the session redirect router.
func NewAuthRouter(
	auth AuthRepository,
	state StateService,
	timeout VaultTimeoutService,
	clock TimeProvider,
	isExtensionContext bool,
	log *logger.Logger,
) AuthRouter {
	if log == nil {
		log = logger.Nop()
	}
	return &authRouter{
		auth:               auth,
		state:              state,
		timeout:            timeout,
		clock:              clock,
		isExtensionContext: isExtensionContext,
		logger:             log,
	}
}

func (r *authRouter) HandleAndRoute(ctx context.Context, event models.AuthEvent) models.Route {
	var route models.Route

	switch event.Kind {
	case models.EventDidStart:
		route = r.startRedirect(ctx)
	case models.EventDidComplete:
		route = r.completeRedirect(ctx)
	case models.EventAccountBecameActive:
		route = r.unlockRedirect(ctx, event.Account,
			event.AttemptAutomaticBiometricUnlock, event.DidSwitchAccountAutomatically)
	case models.EventDidTimeout:
		route = r.timeoutRedirect(ctx, event.UserID)
	case models.EventDidLogout:
		route = r.didLogoutRedirect(ctx, event.UserID, event.UserInitiated)
	case models.EventRequestLogout:
		route = r.logoutRedirect(ctx, event.UserID, event.UserInitiated)
	case models.EventLockVault:
		route = r.lockVaultRedirect(ctx, event.UserID, event.IsManuallyLocking)
	case models.EventSwitchAccount:
		route = r.switchAccountRedirect(ctx, event.UserID, event.IsAutomatic)
	default:
		route = models.Landing()
	}

	r.logger.Debug().
		Int("event", int(event.Kind)).
		Str("route", route.Kind.String()).
		Msg("auth event routed")

	return route
}

// configureActiveAccount resolves the active account, optionally switching
// to the first available alternate when none is active.
func (r *authRouter) configureActiveAccount(ctx context.Context, switchAutomatically bool) (models.Account, error) {
	if account, err := r.auth.ActiveAccount(ctx); err == nil {
		return account, nil
	}

	if !switchAutomatically {
		return models.Account{}, ErrNoActiveAccount
	}

	accounts, err := r.auth.Accounts(ctx)
	if err != nil || len(accounts) == 0 {
		return models.Account{}, ErrNoActiveAccount
	}

	return r.auth.SetActiveAccount(ctx, accounts[0].UserID)
}

// startRedirect handles app start: resolve (or auto-switch to) an account,
// run the logout-timeout pre-check, then evaluate the unlock table.
func (r *authRouter) startRedirect(ctx context.Context) models.Route {
	account, err := r.configureActiveAccount(ctx, true)
	if err != nil {
		if !r.state.IntroCarouselShown(ctx) && !r.isExtensionContext {
			return models.Route{Kind: models.RouteIntroCarousel}
		}
		return models.Landing()
	}

	// Existing accounts mean the carousel no longer needs to be shown.
	r.markCarouselShown(ctx)

	action, actionErr := r.timeout.SessionTimeoutAction(ctx, account.UserID)
	value, valueErr := r.timeout.SessionTimeoutValue(ctx, account.UserID)
	// an unreadable interval must not skip the pre-check: only a
	// confirmed "never" exempts a logout-action account
	if actionErr == nil && action == models.TimeoutActionLogout &&
		(valueErr != nil || !value.IsNever()) {
		return r.timeoutRedirect(ctx, account.UserID)
	}

	return r.unlockRedirect(ctx, account, true, false)
}

// completeRedirect handles the end of an auth flow: pending password reset
// and onboarding steps take priority over plain completion.
func (r *authRouter) completeRedirect(ctx context.Context) models.Route {
	account, err := r.auth.ActiveAccount(ctx)
	if err != nil {
		return models.Landing()
	}

	r.markCarouselShown(ctx)

	if account.ForcePasswordResetReason != nil {
		return models.Route{Kind: models.RouteUpdateMasterPassword}
	}

	if !r.isExtensionContext {
		if status, err := r.state.AccountSetupVaultUnlock(ctx, account.UserID); err == nil && status == models.OnboardingIncomplete {
			return models.Route{Kind: models.RouteVaultUnlockSetup}
		}
		if status, err := r.state.AccountSetupAutofill(ctx, account.UserID); err == nil && status == models.OnboardingIncomplete {
			return models.Route{Kind: models.RouteAutofillSetup}
		}

		target, err := r.state.RehydrationTarget(ctx, account.UserID)
		if err != nil {
			r.logger.Err(err).Msg("read rehydration target")
		} else if target != "" {
			return models.Route{Kind: models.RouteCompleteWithRehydration, RehydrationTarget: target}
		}
	}

	return models.Complete()
}

// unlockRedirect is the ordered unlock decision table, first match wins:
//  1. never-timeout + locked + not manually locked → never-lock auto-unlock
//  2. unlocked → complete
//  3. unauthenticated → soft logout with email pre-filled
//  4. otherwise → unlock screen
func (r *authRouter) unlockRedirect(ctx context.Context, account models.Account, attemptBiometrics, didSwitchAutomatically bool) models.Route {
	userID := account.UserID

	locked, lockedErr := r.auth.IsLocked(ctx, userID)
	manuallyLocked, manualErr := r.state.ManuallyLockedAccount(ctx, userID)
	timeoutValue, timeoutErr := r.timeout.SessionTimeoutValue(ctx, userID)

	switch {
	case lockedErr == nil && manualErr == nil && timeoutErr == nil &&
		timeoutValue.IsNever() && locked && !manuallyLocked:
		if err := r.auth.UnlockWithNeverlockKey(ctx, userID); err != nil {
			r.logger.Err(err).Str("user_id", userID).Msg("never-lock unlock failed")
			return models.VaultUnlock(account, attemptBiometrics, didSwitchAutomatically)
		}
		return models.Route{Kind: models.RouteCompleteWithNeverUnlock}

	case lockedErr == nil && !locked:
		return models.Complete()

	default:
		authenticated, err := r.state.IsAuthenticated(ctx, userID)
		if err != nil {
			r.logger.Err(err).Str("user_id", userID).Msg("authentication check failed")
			return models.VaultUnlock(account, attemptBiometrics, didSwitchAutomatically)
		}
		if !authenticated {
			return models.SoftLoggedOut(account.Email)
		}
		return models.VaultUnlock(account, attemptBiometrics, didSwitchAutomatically)
	}
}

// timeoutRedirect applies the consequence of an expired session timeout.
func (r *authRouter) timeoutRedirect(ctx context.Context, userID string) models.Route {
	value, err := r.timeout.SessionTimeoutValue(ctx, userID)
	if err != nil {
		r.logger.Err(err).Str("user_id", userID).Msg("read timeout value")
		return models.Landing()
	}

	action, actionErr := r.timeout.SessionTimeoutAction(ctx, userID)
	if value.IsNever() || actionErr != nil {
		// A never-timeout user (or one without an action) needs no
		// redirect at all.
		return models.Complete()
	}

	switch action {
	case models.TimeoutActionLock:
		if err := r.auth.LockVault(ctx, userID, false); err != nil {
			r.logger.Err(err).Str("user_id", userID).Msg("timeout lock failed")
			return models.Landing()
		}

		account, err := r.auth.ActiveAccount(ctx)
		if err != nil {
			return models.Landing()
		}

		if !r.isExtensionContext {
			if err := r.state.SaveRehydrationStateIfNeeded(ctx); err != nil {
				r.logger.Err(err).Msg("save rehydration state")
			}
		}

		return r.unlockRedirect(ctx, account, true, false)

	case models.TimeoutActionLogout:
		if err := r.auth.Logout(ctx, userID, false); err != nil {
			r.logger.Err(err).Str("user_id", userID).Msg("timeout logout failed")
			return models.Landing()
		}

		account, err := r.auth.Account(ctx, userID)
		if err != nil {
			r.logger.Err(err).Str("user_id", userID).Msg("read account after timeout logout")
			return models.Landing()
		}
		return models.SoftLoggedOut(account.Email)

	default:
		return models.Landing()
	}
}

// didLogoutRedirect catches routing up with a logout that already happened
// elsewhere. An empty userID means every account has been logged out.
func (r *authRouter) didLogoutRedirect(ctx context.Context, userID string, userInitiated bool) models.Route {
	if userID == "" {
		return models.Landing()
	}

	account, err := r.configureActiveAccount(ctx, userInitiated)
	if err != nil {
		return models.Landing()
	}

	return r.unlockRedirect(ctx, account, true, userID != account.UserID)
}

// lockVaultRedirect locks the target account's vault and re-routes for
// whichever account is active afterwards.
func (r *authRouter) lockVaultRedirect(ctx context.Context, userID string, isManuallyLocking bool) models.Route {
	target, err := r.auth.Account(ctx, userID)
	if err != nil {
		active, activeErr := r.auth.ActiveAccount(ctx)
		if activeErr != nil {
			return models.Landing()
		}
		return r.unlockRedirect(ctx, active, false, false)
	}

	if err := r.auth.LockVault(ctx, target.UserID, isManuallyLocking); err != nil {
		r.logger.Err(err).Str("user_id", target.UserID).Msg("lock vault failed")
	}

	// Re-read the active account after locking; a concurrent switch may
	// have changed it.
	active, err := r.auth.ActiveAccount(ctx)
	if err != nil {
		return models.Landing()
	}
	return r.unlockRedirect(ctx, active, false, false)
}

// logoutRedirect performs a logout and resolves where to land afterwards:
// the previously active account, an automatic switch to the next available
// account (user-initiated only), or landing.
func (r *authRouter) logoutRedirect(ctx context.Context, userID string, userInitiated bool) models.Route {
	previouslyActive, previousErr := r.auth.ActiveAccount(ctx)

	target, err := r.auth.Account(ctx, userID)
	if err != nil {
		if previousErr == nil {
			return r.unlockRedirect(ctx, previouslyActive, false, false)
		}
		if userInitiated {
			if accounts, err := r.auth.Accounts(ctx); err == nil && len(accounts) > 0 {
				return r.switchAccountRedirect(ctx, accounts[0].UserID, true)
			}
		}
		return models.Landing()
	}

	if err := r.auth.Logout(ctx, target.UserID, userInitiated); err != nil {
		r.logger.Err(err).Str("user_id", target.UserID).Msg("logout failed")
		if previousErr == nil {
			return r.unlockRedirect(ctx, previouslyActive, true, false)
		}
		return models.Landing()
	}

	if previousErr == nil && target.UserID != previouslyActive.UserID {
		return r.unlockRedirect(ctx, previouslyActive, false, false)
	}

	if userInitiated {
		if accounts, err := r.auth.Accounts(ctx); err == nil && len(accounts) > 0 {
			return r.switchAccountRedirect(ctx, accounts[0].UserID, true)
		}
	}

	return models.Landing()
}

// switchAccountRedirect stamps the outgoing account's last-active time,
// activates the target account and evaluates the unlock table for it.
func (r *authRouter) switchAccountRedirect(ctx context.Context, userID string, isAutomatic bool) models.Route {
	if current, err := r.auth.ActiveAccount(ctx); err == nil && current.UserID != userID {
		if err := r.timeout.SetLastActiveTime(ctx, current.UserID, r.clock.Now()); err != nil {
			r.logger.Err(err).Str("user_id", current.UserID).Msg("stamp last active time")
			return models.Landing()
		}
	}

	account, err := r.auth.SetActiveAccount(ctx, userID)
	if err != nil {
		r.logger.Err(err).Str("user_id", userID).Msg("activate account failed")
		return models.Landing()
	}

	return r.unlockRedirect(ctx, account, true, isAutomatic)
}

func (r *authRouter) markCarouselShown(ctx context.Context) {
	if !r.state.IntroCarouselShown(ctx) {
		if err := r.state.SetIntroCarouselShown(ctx, true); err != nil {
			r.logger.Err(err).Msg("mark intro carousel shown")
		}
	}
}
