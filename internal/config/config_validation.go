// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the assembled [ClientConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// broken configuration group otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.ExportDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.CheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DeviceSecret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
