// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientServer{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── FetchFeatureFlags ───────────────────────────────────────────────────────

func TestFetchFeatureFlags_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/config", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"featureStates":{"archive-vault-items":true,"other-flag":false}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	flags, err := a.FetchFeatureFlags(context.Background())

	require.NoError(t, err)
	assert.True(t, flags["archive-vault-items"])
	assert.False(t, flags["other-flag"])
}

func TestFetchFeatureFlags_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"featureStates":{}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" session-token ")

	_, err := a.FetchFeatureFlags(context.Background())
	require.NoError(t, err)
}

func TestFetchFeatureFlags_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchFeatureFlags(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchFeatureFlags_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchFeatureFlags(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config response")
}

// ── FetchPolicies ───────────────────────────────────────────────────────────

func TestFetchPolicies_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/policies", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"organizationId":"org-1","type":"restrictItemTypes","enabled":true,"restrictedTypes":[3]},
			{"organizationId":"org-1","type":"masterPassword","enabled":true}
		]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	policies, err := a.FetchPolicies(context.Background())

	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, models.PolicyTypeRestrictItemTypes, policies[0].Type)
	assert.Equal(t, []models.ItemType{models.ItemTypeCard}, policies[0].RestrictedTypes)
}

func TestFetchPolicies_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchPolicies(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── featureFlagService ──────────────────────────────────────────────────────

func TestBoolFlag_UsesRemoteValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"featureStates":{"archive-vault-items":true}}`))
	}))
	defer srv.Close()

	flags := NewFeatureFlagService(newTestAdapter(t, srv.URL), logger.Nop())

	assert.True(t, flags.BoolFlag(context.Background(), "archive-vault-items", false))
}

func TestBoolFlag_UnknownFlagFallsBackToDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"featureStates":{}}`))
	}))
	defer srv.Close()

	flags := NewFeatureFlagService(newTestAdapter(t, srv.URL), logger.Nop())

	assert.True(t, flags.BoolFlag(context.Background(), "missing-flag", true))
	assert.False(t, flags.BoolFlag(context.Background(), "missing-flag", false))
}

func TestBoolFlag_FetchFailureFallsBackToDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	flags := NewFeatureFlagService(newTestAdapter(t, srv.URL), logger.Nop())

	assert.True(t, flags.BoolFlag(context.Background(), "archive-vault-items", true))
	assert.False(t, flags.BoolFlag(context.Background(), "archive-vault-items", false))
}

func TestBoolFlag_CachesSnapshot(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"featureStates":{"archive-vault-items":true}}`))
	}))
	defer srv.Close()

	flags := NewFeatureFlagService(newTestAdapter(t, srv.URL), logger.Nop())

	ctx := context.Background()
	flags.BoolFlag(ctx, "archive-vault-items", false)
	flags.BoolFlag(ctx, "archive-vault-items", false)
	flags.BoolFlag(ctx, "other-flag", false)

	assert.Equal(t, 1, calls)
}

// ── policyService ───────────────────────────────────────────────────────────

func TestRestrictedItemTypes_CollectsEnabledRestrictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"organizationId":"org-1","type":"restrictItemTypes","enabled":true,"restrictedTypes":[3,5]},
			{"organizationId":"org-2","type":"restrictItemTypes","enabled":true,"restrictedTypes":[3]},
			{"organizationId":"org-3","type":"restrictItemTypes","enabled":false,"restrictedTypes":[1]},
			{"organizationId":"org-1","type":"masterPassword","enabled":true}
		]}`))
	}))
	defer srv.Close()

	policies := NewPolicyService(newTestAdapter(t, srv.URL), logger.Nop())

	restricted := policies.RestrictedItemTypes(context.Background())
	assert.Equal(t, []models.ItemType{models.ItemTypeCard, models.ItemTypeSSHKey}, restricted)
}

func TestRestrictedItemTypes_FetchFailureMeansNoRestrictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	policies := NewPolicyService(newTestAdapter(t, srv.URL), logger.Nop())

	assert.Empty(t, policies.RestrictedItemTypes(context.Background()))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "full https url", input: "https://vault.example.com", expected: "https://vault.example.com"},
		{name: "trailing slash trimmed", input: "https://vault.example.com/", expected: "https://vault.example.com"},
		{name: "bare host gets https", input: "vault.example.com", expected: "https://vault.example.com"},
		{name: "host with port", input: "localhost:8080", expected: "https://localhost:8080"},
		{name: "empty address", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
