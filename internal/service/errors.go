package service

import "errors"

// Sentinel errors returned by the export and routing services. Callers
// should use [errors.Is] to match against these values; the underlying
// collaborator error is always wrapped alongside the sentinel.
var (
	// ErrFetch is returned when retrieving items or folders from the
	// vault store fails. No partial export is ever produced.
	ErrFetch = errors.New("vault fetch failed")

	// ErrSerialize is returned when the exporter fails to serialize the
	// filtered item set.
	ErrSerialize = errors.New("vault serialization failed")

	// ErrNoActiveAccount is returned when no account could be resolved as
	// the active one and automatic switching found no alternative.
	ErrNoActiveAccount = errors.New("no active account")

	// ErrAuthenticationRequired is returned when an operation requires an
	// authenticated session but the session token is absent or expired.
	ErrAuthenticationRequired = errors.New("authentication required")
)
