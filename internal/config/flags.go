package config

import (
	"errors"
	"flag"
	"net/url"
	"time"
)

// ServerURL holds a validated remote server base URL.
// It implements the flag.Value interface.
type ServerURL struct {
	URL string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-base-url remote server base URL (http/https)
//	-export-dir directory for generated export files
//	-export-prefix export filename prefix
//	-device-secret per-device secret for the never-lock key
//	-extension-context mark the process as an app extension
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-check-interval timeout watcher check interval (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL ServerURL
	var databaseDSN string
	var exportDir string
	var exportPrefix string
	var deviceSecret string
	var extensionContext bool
	var requestTimeout time.Duration
	var checkInterval time.Duration
	var jsonConfigPath string

	flag.Var(&baseURL, "base-url", "Remote server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&exportDir, "export-dir", "", "Export file directory")
	flag.StringVar(&exportPrefix, "export-prefix", "", "Export filename prefix")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device secret for the never-lock key")
	flag.BoolVar(&extensionContext, "extension-context", false, "Run as an app extension")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&checkInterval, "check-interval", 0, "Timeout watcher check interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ExportPrefix:     exportPrefix,
			DeviceSecret:     deviceSecret,
			ExtensionContext: extensionContext,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ExportDir: exportDir,
			},
		},
		Server: Server{
			BaseURL:        baseURL.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CheckInterval: checkInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the stored base URL, or an empty string when unset.
func (u *ServerURL) String() string {
	return u.URL
}

// Set parses the input string as a URL and stores it. It requires an
// http or https scheme and a non-empty host, and returns an error when the
// value does not look like a server base URL.
func (u *ServerURL) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("base URL scheme must be http or https")
	}

	if parsed.Host == "" {
		return errors.New("base URL must include a host")
	}

	u.URL = parsed.String()
	return nil
}
