package models

import "time"

// SessionTimeoutValue is the per-user vault timeout interval.
// TimeoutNever disables timeout locking entirely.
type SessionTimeoutValue time.Duration

// TimeoutNever is the sentinel interval meaning the vault never times out.
// A never-lock key is stored locally so the vault can be reopened without
// user interaction.
const TimeoutNever SessionTimeoutValue = -1

// IsNever reports whether the interval is the never-timeout sentinel.
func (v SessionTimeoutValue) IsNever() bool { return v == TimeoutNever }

// Duration returns the interval as a time.Duration. Only meaningful when
// IsNever is false.
func (v SessionTimeoutValue) Duration() time.Duration { return time.Duration(v) }

// TimeoutAction is the consequence applied when a session timeout expires.
type TimeoutAction int

const (
	// TimeoutActionLock locks the vault, keeping the session token.
	TimeoutActionLock TimeoutAction = iota

	// TimeoutActionLogout revokes the local session entirely.
	TimeoutActionLogout
)

// TimeoutConfig is the per-user timeout policy read from the state store.
type TimeoutConfig struct {
	// Interval is how long the vault may stay unlocked without activity.
	Interval SessionTimeoutValue `json:"interval"`

	// Action is what happens when Interval elapses.
	Action TimeoutAction `json:"action"`
}
