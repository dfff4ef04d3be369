// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the session timeout
// watcher.
package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mocks.go -package=mock

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// TimeoutWatcher periodically compares each account's last activity stamp
// against its configured session timeout, and feeds expirations into auth
// routing. The watcher is idle until Start is called.
type TimeoutWatcher interface {
	// Start launches the background check loop with the given interval.
	// A previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call when the watcher is not running.
	Stop()
}
