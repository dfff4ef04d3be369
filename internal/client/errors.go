package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name the client does not
	// recognise.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrVaultUnavailable is returned when a command needs an unlocked
	// vault but routing resolved to an auth screen instead.
	ErrVaultUnavailable = errors.New("vault is not available")

	// ErrUnknownExportFormat is returned for an unrecognised -format value.
	ErrUnknownExportFormat = errors.New("unknown export format")

	// ErrMissingExportPassword is returned when an encrypted export is
	// requested without a file password.
	ErrMissingExportPassword = errors.New("encrypted export needs a file password")
)
