package identifier

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UsersClient manages user accounts.
type UsersClient interface {
	List(ctx context.Context, request *ListUsersRequest) (*Page[User], error)
	Create(ctx context.Context, request *CreateUserRequest) (*User, error)
	Get(ctx context.Context, request *GetUserRequest) (*User, error)
	Delete(ctx context.Context, request *DeleteUserRequest) error
}

// IdentifiersClient manages the API credentials issued to users.
type IdentifiersClient interface {
	List(ctx context.Context, request *ListIdentifiersRequest) (*Page[Identifier], error)
	Create(ctx context.Context, request *CreateIdentifierRequest) (*Identifier, error)
	Delete(ctx context.Context, request *DeleteIdentifierRequest) error
}

// SecurityPoliciesClient manages security policies and their attachment to users.
type SecurityPoliciesClient interface {
	List(ctx context.Context, request *ListSecurityPoliciesRequest) (*Page[SecurityPolicy], error)
	ListCommon(ctx context.Context, request *ListSecurityPoliciesRequest) (*Page[SecurityPolicy], error)
	Create(ctx context.Context, request *CreateSecurityPolicyRequest) (*SecurityPolicy, error)
	Get(ctx context.Context, request *GetSecurityPolicyRequest) (*SecurityPolicy, error)
	Update(ctx context.Context, request *UpdateSecurityPolicyRequest) (*SecurityPolicy, error)
	Delete(ctx context.Context, request *DeleteSecurityPolicyRequest) error

	ListAttached(ctx context.Context, request *ListAttachedSecurityPoliciesRequest) (*Page[AttachedSecurityPolicy], error)
	Attach(ctx context.Context, request *AttachSecurityPolicyRequest) error
	Detach(ctx context.Context, request *DetachSecurityPolicyRequest) error
}

// Client provides access to all identifier resource clients.
type Client interface {
	Users() UsersClient
	Identifiers() IdentifiersClient
	SecurityPolicies() SecurityPoliciesClient

	// Endpoint returns the endpoint alias requests are addressed to.
	Endpoint() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Endpoint resolution
//
// Every operation is addressed to an endpoint alias (Endpoint, "identifier" by
// default). The default transport builds the request URL by substituting
// "{endpoint}" and "{region}" in BaseURL. Pointing Endpoint or BaseURL at an
// alternate backend is the supported way to target a mock or staging
// service; the value is fixed for the lifetime of the client.
//
// # Credentials
//
// AccessToken, if set, is sent as a Bearer token. Other signing schemes are
// supplied as RequestInterceptors, which run after the built-in ones and may
// set any header on the outgoing request.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. Retries of transient failures (>=500, 429, connection errors) are
// performed by the transport and tuned with RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// Region is substituted for "{region}" in BaseURL.
	Region string
	// Endpoint is the endpoint alias; defaults to DefaultEndpoint.
	Endpoint string
	// BaseURL is the URL template requests are sent to. Defaults to
	// "https://{endpoint}.{region}.gs2io.com". A value without placeholders is
	// used as is.
	BaseURL string

	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string
	// RequestInterceptors run before each request is sent, in order.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run after each response is received, in order.
	ResponseInterceptors []ResponseInterceptor

	// HTTPTimeout bounds a single HTTP attempt. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero uses
	// the default, a negative value disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// RateLimit caps outgoing requests per second. Zero disables the limiter.
	RateLimit float64
	// RateBurst is the limiter burst size; defaults to 1 when RateLimit is set.
	RateBurst int

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// MetricsRegisterer: when set, request metrics are registered with it.
	MetricsRegisterer prometheus.Registerer
}
