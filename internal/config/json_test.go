package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be either strings ("30s") or nanosecond numbers.
	jsonBody := `{
		"app": {
			"export_prefix": "myvault",
			"device_secret": "device_secret",
			"extension_context": true,
			"version": "1.2.3"
		},
		"server": {
			"base_url": "https://vault.example.com",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/warden/vault.db" },
			"files": { "export_dir": "/var/data/exports" }
		},
		"workers": {
			"check_interval": "15s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "myvault", cfg.App.ExportPrefix)
	assert.Equal(t, "device_secret", cfg.App.DeviceSecret)
	assert.True(t, cfg.App.ExtensionContext)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://vault.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/lib/warden/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/data/exports", cfg.Storage.Files.ExportDir)

	assert.Equal(t, 15*time.Second, cfg.Workers.CheckInterval)

	// the JSON file never points at another JSON file
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"storage": {
			"db": { "dsn": "warden.db" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "warden.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Files.ExportDir)
	assert.Empty(t, cfg.App.DeviceSecret)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(p, []byte(`{not json`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Minute)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}
