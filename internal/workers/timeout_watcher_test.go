package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/mock"
	"github.com/MKhiriev/go-warden/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// хелпер для создания наблюдателя с моками
func newTestWatcher(t *testing.T, ctrl *gomock.Controller) (
	*timeoutWatcher,
	*mock.MockAuthRepository,
	*mock.MockStateService,
	*mock.MockVaultTimeoutService,
	*mock.MockAuthRouter,
	*mock.MockTimeProvider,
) {
	t.Helper()

	mockAuth := mock.NewMockAuthRepository(ctrl)
	mockState := mock.NewMockStateService(ctrl)
	mockTimeout := mock.NewMockVaultTimeoutService(ctrl)
	mockRouter := mock.NewMockAuthRouter(ctrl)
	mockClock := mock.NewMockTimeProvider(ctrl)

	w := NewTimeoutWatcher(mockAuth, mockState, mockTimeout, mockRouter, mockClock, logger.Nop()).(*timeoutWatcher)
	return w, mockAuth, mockState, mockTimeout, mockRouter, mockClock
}

func TestSweep_RoutesExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, mockRouter, mockClock := newTestWatcher(t, ctrl)

	ctx := context.Background()
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-1").Return(models.TimeoutActionLock, nil)
	mockAuth.EXPECT().IsLocked(ctx, "user-1").Return(false, nil)
	mockTimeout.EXPECT().LastActiveTime(ctx, "user-1").Return(now.Add(-20*time.Minute), nil)
	mockClock.EXPECT().Now().Return(now)

	mockRouter.EXPECT().
		HandleAndRoute(ctx, models.AuthEvent{Kind: models.EventDidTimeout, UserID: "user-1"}).
		Return(models.Route{Kind: models.RouteVaultUnlock})

	w.sweep(ctx)
}

func TestSweep_FreshSessionNotRouted(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, _, mockClock := newTestWatcher(t, ctrl)

	ctx := context.Background()
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-1").Return(models.TimeoutActionLock, nil)
	mockAuth.EXPECT().IsLocked(ctx, "user-1").Return(false, nil)
	mockTimeout.EXPECT().LastActiveTime(ctx, "user-1").Return(now.Add(-5*time.Minute), nil)
	mockClock.EXPECT().Now().Return(now)

	w.sweep(ctx)
}

func TestSweep_NeverTimeoutSkipsAllOtherChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, _, _ := newTestWatcher(t, ctrl)

	ctx := context.Background()

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.TimeoutNever, nil)

	w.sweep(ctx)
}

func TestSweep_LockedVaultNotRelocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, _, _ := newTestWatcher(t, ctrl)

	ctx := context.Background()

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-1").Return(models.TimeoutActionLock, nil)
	mockAuth.EXPECT().IsLocked(ctx, "user-1").Return(true, nil)

	w.sweep(ctx)
}

func TestSweep_LoggedOutAccountNotReloggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, mockState, mockTimeout, _, _ := newTestWatcher(t, ctrl)

	ctx := context.Background()

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-1").Return(models.TimeoutActionLogout, nil)
	mockState.EXPECT().IsAuthenticated(ctx, "user-1").Return(false, nil)

	w.sweep(ctx)
}

func TestSweep_NoActivityStampNotRouted(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, _, _ := newTestWatcher(t, ctrl)

	ctx := context.Background()

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "user-1"}}, nil)
	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-1").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-1").Return(models.TimeoutActionLock, nil)
	mockAuth.EXPECT().IsLocked(ctx, "user-1").Return(false, nil)
	mockTimeout.EXPECT().LastActiveTime(ctx, "user-1").Return(time.Time{}, nil)

	w.sweep(ctx)
}

func TestSweep_BrokenAccountDoesNotStallOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, mockTimeout, mockRouter, mockClock := newTestWatcher(t, ctrl)

	ctx := context.Background()
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

	mockAuth.EXPECT().Accounts(ctx).Return([]models.Account{{UserID: "broken"}, {UserID: "user-2"}}, nil)

	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "broken").Return(models.SessionTimeoutValue(0), errors.New("disk I/O error"))

	mockTimeout.EXPECT().SessionTimeoutValue(ctx, "user-2").Return(models.SessionTimeoutValue(15*time.Minute), nil)
	mockTimeout.EXPECT().SessionTimeoutAction(ctx, "user-2").Return(models.TimeoutActionLock, nil)
	mockAuth.EXPECT().IsLocked(ctx, "user-2").Return(false, nil)
	mockTimeout.EXPECT().LastActiveTime(ctx, "user-2").Return(now.Add(-time.Hour), nil)
	mockClock.EXPECT().Now().Return(now)

	mockRouter.EXPECT().
		HandleAndRoute(ctx, models.AuthEvent{Kind: models.EventDidTimeout, UserID: "user-2"}).
		Return(models.Route{Kind: models.RouteVaultUnlock})

	w.sweep(ctx)
}

func TestSweep_AccountsListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, _, _, _ := newTestWatcher(t, ctrl)

	ctx := context.Background()
	mockAuth.EXPECT().Accounts(ctx).Return(nil, errors.New("database is locked"))

	// no routing may happen
	w.sweep(ctx)
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, mockAuth, _, _, _, _ := newTestWatcher(t, ctrl)

	swept := make(chan struct{}, 1)
	mockAuth.EXPECT().Accounts(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Account, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return nil, nil
	}).AnyTimes()

	w.Start(context.Background(), 5*time.Millisecond)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("expected at least one sweep before the deadline")
	}

	w.Stop()
}

func TestStop_WithoutStartIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, _, _, _, _, _ := newTestWatcher(t, ctrl)

	assert.NotPanics(t, func() { w.Stop() })
}
