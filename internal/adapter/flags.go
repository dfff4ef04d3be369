// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
)

// flagCacheTTL is how long a fetched feature flag snapshot stays fresh.
const flagCacheTTL = 5 * time.Minute

// featureFlagService resolves feature flags from the remote server with a
// short-lived local cache. Any fetch failure degrades to the caller's
// default value, never to an error.
type featureFlagService struct {
	adapter ServerAdapter
	logger  *logger.Logger

	mu        sync.Mutex
	flags     map[string]bool
	fetchedAt time.Time
}

func NewFeatureFlagService(adapter ServerAdapter, logger *logger.Logger) service.FeatureFlagService {
	logger.Debug().Msg("creating feature flag service")
	return &featureFlagService{
		adapter: adapter,
		logger:  logger,
	}
}

// BoolFlag implements [service.FeatureFlagService].
func (s *featureFlagService) BoolFlag(ctx context.Context, name string, defaultValue bool) bool {
	flags, err := s.snapshot(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "featureFlagService.BoolFlag").Str("flag", name).Msg("falling back to default flag value")
		return defaultValue
	}

	value, ok := flags[name]
	if !ok {
		return defaultValue
	}
	return value
}

func (s *featureFlagService) snapshot(ctx context.Context) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flags != nil && time.Since(s.fetchedAt) < flagCacheTTL {
		return s.flags, nil
	}

	flags, err := s.adapter.FetchFeatureFlags(ctx)
	if err != nil {
		// keep serving a stale snapshot over nothing
		if s.flags != nil {
			return s.flags, nil
		}
		return nil, err
	}

	s.flags = flags
	s.fetchedAt = time.Now()
	return s.flags, nil
}
