package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a field was not set by any
// configuration source. The device secret has no default on purpose.
const (
	defaultDSN            = "warden.db"
	defaultExportDir      = "exports"
	defaultBaseURL        = "https://vault.bitwarden.com"
	defaultRequestTimeout = 30 * time.Second
	defaultCheckInterval  = 30 * time.Second
)

// ClientApp holds application-level settings used by the client runtime.
type ClientApp struct {
	// ExportPrefix overrides the default export filename prefix.
	ExportPrefix string
	// DeviceSecret is the per-device secret for the never-lock key.
	DeviceSecret string
	// ExtensionContext marks the process as running in an app extension.
	ExtensionContext bool
	// Version is the application version string.
	Version string
}

// ClientServer holds remote server settings used by the client transport
// layer.
type ClientServer struct {
	// BaseURL is the remote vault server base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string for the local vault database.
	DSN string
}

// ClientFiles contains export file settings for the client.
type ClientFiles struct {
	// ExportDir is the directory export files are written to.
	ExportDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds export file settings.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CheckInterval defines how often the timeout watcher runs.
	CheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Server contains remote server addresses and timeouts.
	Server ClientServer
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills unset fields with defaults, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ExportPrefix:     cfg.App.ExportPrefix,
			DeviceSecret:     cfg.App.DeviceSecret,
			ExtensionContext: cfg.App.ExtensionContext,
			Version:          cfg.App.Version,
		},
		Server: ClientServer{
			BaseURL:        orDefault(cfg.Server.BaseURL, defaultBaseURL),
			RequestTimeout: orDefaultDuration(cfg.Server.RequestTimeout, defaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: orDefault(cfg.Storage.DB.DSN, defaultDSN),
			},
			Files: ClientFiles{
				ExportDir: orDefault(cfg.Storage.Files.ExportDir, defaultExportDir),
			},
		},
		Workers: ClientWorkers{
			CheckInterval: orDefaultDuration(cfg.Workers.CheckInterval, defaultCheckInterval),
		},
	}

	return clientCfg, clientCfg.validate()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func orDefaultDuration(value, fallback time.Duration) time.Duration {
	if value == 0 {
		return fallback
	}
	return value
}
