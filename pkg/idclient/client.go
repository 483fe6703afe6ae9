// Package idclient provides the main entry point for creating identifier API clients
package idclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/identifier-client/internal/client"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// New creates a new identifier API client using the default HTTP transport.
func New(ctx context.Context, config *identifier.Config) (identifier.Client, error) {
	if config == nil {
		return nil, identifier.ErrConfigRequired
	}

	normalized := normalizeConfig(config)

	// Use the internal client implementation
	client, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithTransport creates a client that sends every call through transport.
// Tests use it with a recording transport; it is also the hook for custom
// signing or alternate wire protocols.
func NewWithTransport(config *identifier.Config, transport identifier.Transport) (identifier.Client, error) {
	if config == nil {
		return nil, identifier.ErrConfigRequired
	}

	client, err := client.NewWithTransport(normalizeConfig(config), transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a new client for region authenticated with a bearer token.
func NewWithToken(ctx context.Context, region, token string) (identifier.Client, error) {
	return New(ctx, &identifier.Config{
		Region:      region,
		AccessToken: token,
	})
}

// normalizeConfig returns a copy of config with defaults filled in.
func normalizeConfig(config *identifier.Config) *identifier.Config {
	normalized := *config

	normalized.Endpoint = strings.TrimSpace(normalized.Endpoint)
	if normalized.Endpoint == "" {
		normalized.Endpoint = identifier.DefaultEndpoint
	}

	normalized.Region = strings.TrimSpace(normalized.Region)

	baseURL := strings.TrimSuffix(strings.TrimSpace(normalized.BaseURL), "/")
	if baseURL != "" && !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized.BaseURL = baseURL

	return &normalized
}
