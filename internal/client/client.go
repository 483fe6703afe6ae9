package client

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/internal/http"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// Client implements the identifier.Client interface.
type Client struct {
	transport identifier.Transport
	endpoint  string

	// Resource clients
	users            *UsersClient
	identifiers      *IdentifiersClient
	securityPolicies *SecurityPoliciesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *identifier.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax != 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.RateLimit > 0 {
		httpOpts = append(httpOpts, http.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	if config.MetricsRegisterer != nil {
		metrics, err := http.NewMetrics(config.MetricsRegisterer)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithMetrics(metrics))
	}

	if config.AccessToken != "" {
		httpOpts = append(httpOpts, http.WithRequestInterceptor(identifier.StaticTokenInterceptor(config.AccessToken)))
	}

	for _, interceptor := range config.RequestInterceptors {
		httpOpts = append(httpOpts, http.WithRequestInterceptor(interceptor))
	}

	for _, interceptor := range config.ResponseInterceptors {
		httpOpts = append(httpOpts, http.WithResponseInterceptor(interceptor))
	}

	return httpOpts, nil
}

// ResolveBaseURL returns the base URL of config with "{region}" substituted.
// "{endpoint}" is left for the transport.
func ResolveBaseURL(config *identifier.Config) (string, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	if strings.Contains(baseURL, constants.RegionPlaceholder) {
		if config.Region == "" {
			return "", identifier.ErrRegionRequired
		}

		baseURL = strings.ReplaceAll(baseURL, constants.RegionPlaceholder, config.Region)
	}

	return baseURL, nil
}

// New creates an identifier client that talks HTTP through the default transport.
func New(config *identifier.Config) (*Client, error) {
	if config == nil {
		return nil, identifier.ErrConfigRequired
	}

	baseURL, err := ResolveBaseURL(config)
	if err != nil {
		return nil, err
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, fmt.Errorf("configuring transport: %w", err)
	}

	return NewWithTransport(config, http.NewClient(baseURL, httpOpts...))
}

// NewWithTransport creates an identifier client that sends every call through transport.
// Only the endpoint alias of config is used.
func NewWithTransport(config *identifier.Config, transport identifier.Transport) (*Client, error) {
	if config == nil {
		return nil, identifier.ErrConfigRequired
	}

	if transport == nil {
		return nil, identifier.ErrTransportRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = identifier.DefaultEndpoint
	}

	client := &Client{
		transport: transport,
		endpoint:  endpoint,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	caller := newCaller(c.transport, c.endpoint)

	c.users = NewUsersClient(caller)
	c.identifiers = NewIdentifiersClient(caller)
	c.securityPolicies = NewSecurityPoliciesClient(caller)
}

// Users implements identifier.Client.Users.
func (c *Client) Users() identifier.UsersClient {
	return c.users
}

// Identifiers implements identifier.Client.Identifiers.
func (c *Client) Identifiers() identifier.IdentifiersClient {
	return c.identifiers
}

// SecurityPolicies implements identifier.Client.SecurityPolicies.
func (c *Client) SecurityPolicies() identifier.SecurityPoliciesClient {
	return c.securityPolicies
}

// Endpoint implements identifier.Client.Endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}
