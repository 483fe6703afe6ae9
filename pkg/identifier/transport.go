package identifier

import (
	"context"
	"net/http"
	"net/url"
)

// ServiceName is the service every identifier operation is addressed to.
const ServiceName = "Gs2Identifier"

// DefaultEndpoint is the endpoint alias of the identifier service.
const DefaultEndpoint = "identifier"

// Request describes a single API call handed to a Transport.
type Request struct {
	// Service and Operation name the remote operation, e.g. "Gs2Identifier" and "GetUser".
	Service   string
	Operation string
	// Endpoint is the endpoint alias the Transport resolves to a host.
	Endpoint string
	Method   string
	// Path is URL-escaped; each user-supplied segment is escaped on its own.
	Path  string
	Query url.Values
	// Body is JSON-encoded by the Transport. Nil means no body.
	Body    interface{}
	Headers http.Header
}

// Response is the raw result of a call. Body holds the undecoded JSON payload.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// Transport executes API calls. It owns endpoint resolution, credentials,
// retries and the connection. Implementations return a non-nil error for
// transport failures and for error responses from the API.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do implements Transport.
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
