// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-warden application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device secret,
	// the export filename prefix, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends, including
	// the local vault database and the export file directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the remote API endpoint and timeout settings used by
	// the outbound transport layer.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes such as
	// the session timeout watcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ExportPrefix overrides the default filename prefix for vault export
	// files. Empty means the built-in default is used.
	// Env: APP_EXPORT_PREFIX
	ExportPrefix string `env:"EXPORT_PREFIX"`

	// DeviceSecret is the per-device secret used to derive the key that
	// wraps the never-lock vault key. Must be kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// ExtensionContext marks the process as running inside an app
	// extension, which skips the intro carousel and onboarding screens.
	// Env: APP_EXTENSION_CONTEXT
	ExtensionContext bool `env:"EXTENSION_CONTEXT"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local vault database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for generated export files.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local vault database.
type DB struct {
	// DSN is the SQLite data source name used to open the local vault
	// database (e.g. "warden.db" or "/var/lib/warden/vault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for generated export files.
type Files struct {
	// ExportDir is the directory where vault export files are written
	// before being handed to the user.
	// Env: STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Server holds the remote API endpoint settings for the outbound transport
// layer.
type Server struct {
	// BaseURL is the base URL of the remote vault server
	// (e.g. "https://vault.bitwarden.com").
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CheckInterval defines how often the session timeout watcher compares
	// the last activity stamp against the configured timeout.
	// Env: WORKERS_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (earlier sources
// win for fields set in multiple places):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
