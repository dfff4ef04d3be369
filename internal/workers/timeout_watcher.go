// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/internal/utils"
	"github.com/MKhiriev/go-warden/models"
)

// defaultCheckInterval is used when Start is given a non-positive interval.
const defaultCheckInterval = 30 * time.Second

type timeoutWatcher struct {
	auth    service.AuthRepository
	state   service.StateService
	timeout service.VaultTimeoutService
	router  service.AuthRouter
	clock   service.TimeProvider
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTimeoutWatcher creates a timeoutWatcher that sweeps all known accounts
// on a ticker and emits a timeout event for every expired session. The
// watcher is idle until Start is called.
func NewTimeoutWatcher(
	auth service.AuthRepository,
	state service.StateService,
	timeout service.VaultTimeoutService,
	router service.AuthRouter,
	clock service.TimeProvider,
	logger *logger.Logger,
) TimeoutWatcher {
	return &timeoutWatcher{
		auth:    auth,
		state:   state,
		timeout: timeout,
		router:  router,
		clock:   clock,
		logger:  logger,
	}
}

// Start implements [TimeoutWatcher]. It stops any previously running loop,
// then launches a background goroutine that sweeps the accounts every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (w *timeoutWatcher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.sweep(loopCtx)
			}
		}
	}()
}

// Stop implements [TimeoutWatcher]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the watcher is not running (no-op in that case).
func (w *timeoutWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// sweep checks every known account once and routes a timeout event for each
// expired session. Per-account failures are logged and skipped so one broken
// row cannot stall the watcher.
func (w *timeoutWatcher) sweep(ctx context.Context) {
	log := logger.FromContext(ctx)

	accounts, err := w.auth.Accounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "timeoutWatcher.sweep").Msg("failed to list accounts")
		return
	}

	for _, account := range accounts {
		// so downstream log entries carry the account being swept
		accountCtx := context.WithValue(ctx, utils.UserIDCtxKey, account.UserID)

		expired, err := w.sessionExpired(accountCtx, account.UserID)
		if err != nil {
			log.Err(err).Str("func", "timeoutWatcher.sweep").Str("user_id", account.UserID).Msg("failed to evaluate session timeout")
			continue
		}
		if !expired {
			continue
		}

		w.router.HandleAndRoute(accountCtx, models.AuthEvent{
			Kind:   models.EventDidTimeout,
			UserID: account.UserID,
		})
	}
}

func (w *timeoutWatcher) sessionExpired(ctx context.Context, userID string) (bool, error) {
	value, err := w.timeout.SessionTimeoutValue(ctx, userID)
	if err != nil {
		return false, err
	}
	if value.IsNever() {
		return false, nil
	}

	action, err := w.timeout.SessionTimeoutAction(ctx, userID)
	if err != nil {
		return false, err
	}
	switch action {
	case models.TimeoutActionLock:
		// an already locked vault has nothing left to lock
		locked, err := w.auth.IsLocked(ctx, userID)
		if err != nil {
			return false, err
		}
		if locked {
			return false, nil
		}
	case models.TimeoutActionLogout:
		// a soft-logged-out account has no session left to revoke
		authenticated, err := w.state.IsAuthenticated(ctx, userID)
		if err != nil {
			return false, err
		}
		if !authenticated {
			return false, nil
		}
	}

	lastActive, err := w.timeout.LastActiveTime(ctx, userID)
	if err != nil {
		return false, err
	}
	if lastActive.IsZero() {
		return false, nil
	}

	return w.clock.Now().Sub(lastActive) >= value.Duration(), nil
}
