package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/utils"
	"github.com/MKhiriev/go-warden/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// configResponse is the shape of the remote client configuration document.
type configResponse struct {
	FeatureStates map[string]bool `json:"featureStates"`
}

// policiesResponse wraps the policy list the server returns.
type policiesResponse struct {
	Data []models.Policy `json:"data"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientServer, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient(cfg.RequestTimeout)
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url: %w", err)
	}

	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchFeatureFlags implements [ServerAdapter]. It GETs the remote client
// configuration from GET /api/config and returns the feature state map.
func (h *httpServerAdapter) FetchFeatureFlags(ctx context.Context) (map[string]bool, error) {
	resp, err := h.authedRequest(ctx).Get("/api/config")
	if err != nil {
		return nil, fmt.Errorf("fetch feature flags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cfg configResponse
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return nil, fmt.Errorf("decode config response: %w", err)
	}

	return cfg.FeatureStates, nil
}

// FetchPolicies implements [ServerAdapter]. It GETs the organization
// policies applying to the active user from GET /api/policies.
func (h *httpServerAdapter) FetchPolicies(ctx context.Context) ([]models.Policy, error) {
	resp, err := h.authedRequest(ctx).Get("/api/policies")
	if err != nil {
		return nil, fmt.Errorf("fetch policies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var policies policiesResponse
	if err = json.Unmarshal(resp.Body(), &policies); err != nil {
		return nil, fmt.Errorf("decode policies response: %w", err)
	}

	return policies.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.ids.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
