// Package http implements the default identifier.Transport on top of
// hashicorp/go-retryablehttp.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// Client sends identifier requests over HTTP. It implements identifier.Transport.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	interceptors *identifier.InterceptorChain
	logger       identifier.Logger
	debug        bool
	userAgent    string
	limiter      *rate.Limiter
	metrics      *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry failures.
func WithLogger(logger identifier.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables logging of every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry limits. A negative retryMax disables retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax < 0 {
			retryMax = 0
		}

		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds a single HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRateLimit limits outgoing requests to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil

			return
		}

		if burst < 1 {
			burst = 1
		}

		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithRequestInterceptor appends a request interceptor.
func WithRequestInterceptor(interceptor identifier.RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(interceptor)
	}
}

// WithResponseInterceptor appends a response interceptor.
func WithResponseInterceptor(interceptor identifier.ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddResponseInterceptor(interceptor)
	}
}

// NewClient creates a client for baseURL. The base URL may contain an
// "{endpoint}" placeholder, replaced by the endpoint alias of each request.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand the last response back after retries are exhausted so the API
	// error body can still be parsed.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		interceptors: identifier.NewInterceptorChain(),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do implements identifier.Transport.
func (c *Client) Do(ctx context.Context, req *identifier.Request) (*identifier.Response, error) {
	if req.Headers == nil {
		req.Headers = make(http.Header)
	}

	requestID := req.Headers.Get(constants.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
		req.Headers.Set(constants.HeaderRequestID, requestID)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		err = c.limiter.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method":     httpReq.Method,
		"url":        httpReq.URL.String(),
		"operation":  req.Operation,
		"request_id": requestID,
	})

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req, 0, time.Since(start))

		resp := &identifier.Response{Error: err}
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)

		return nil, fmt.Errorf("executing %s %s: %w", req.Method, req.Path, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	elapsed := time.Since(start)
	c.metrics.observe(req, httpResp.StatusCode, elapsed)

	c.logDebug("HTTP Response", map[string]interface{}{
		"status":     httpResp.StatusCode,
		"duration":   elapsed.String(),
		"request_id": requestID,
		"size":       len(body),
	})

	resp := &identifier.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		errResp := identifier.ParseResponseError(httpResp.StatusCode, body)
		errResp.RequestID = requestID
		resp.Error = errResp
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil {
		return resp, err
	}

	if resp.Error != nil {
		return resp, resp.Error
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req *identifier.Request) (*retryablehttp.Request, error) {
	target, err := c.resolveURL(req)
	if err != nil {
		return nil, err
	}

	var body interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

// resolveURL substitutes the endpoint alias and appends path and query.
// req.Path is already escaped by the caller and is sent as is, so an escaped
// slash inside a segment never splits it.
func (c *Client) resolveURL(req *identifier.Request) (string, error) {
	base := strings.ReplaceAll(c.baseURL, constants.EndpointPlaceholder, req.Endpoint)

	target, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", base, err)
	}

	rawPath := strings.TrimSuffix(target.EscapedPath(), "/") + req.Path

	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", req.Path, err)
	}

	target.Path = path
	target.RawPath = rawPath

	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	return target.String(), nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// leveledLogger forwards retryablehttp warnings and errors. Its per-attempt
// debug output is dropped in favour of the client's own request logging.
type leveledLogger struct {
	logger identifier.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
