package identifier_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

var errNoToken = errors.New("no token")

type recordingLogger struct {
	levels   []string
	messages []string
}

func (l *recordingLogger) record(level, msg string) {
	l.levels = append(l.levels, level)
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }

func TestInterceptorChain(t *testing.T) {
	t.Parallel()

	chain := identifier.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *identifier.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *identifier.Request) error {
		order = append(order, "second")

		return nil
	})
	chain.AddResponseInterceptor(func(ctx context.Context, req *identifier.Request, resp *identifier.Response) error {
		order = append(order, "response")

		return nil
	})

	assert.Equal(t, 3, chain.Len())

	req := &identifier.Request{Operation: "GetUser"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &identifier.Response{}))
	assert.Equal(t, []string{"first", "second", "response"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := identifier.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(identifier.AuthenticationInterceptor(func(context.Context) (string, error) {
		return "", errNoToken
	}))
	chain.AddRequestInterceptor(func(ctx context.Context, req *identifier.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &identifier.Request{})
	require.ErrorIs(t, err, errNoToken)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestStaticTokenInterceptor(t *testing.T) {
	t.Parallel()

	req := &identifier.Request{}
	require.NoError(t, identifier.StaticTokenInterceptor("abc")(context.Background(), req))
	assert.Equal(t, "Bearer abc", req.Headers.Get("Authorization"))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &identifier.Request{Headers: http.Header{"X-Existing": {"1"}}}
	interceptor := identifier.HeaderInterceptor(map[string]string{"X-Gs2-Client-Id": "client"})

	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "client", req.Headers.Get("X-Gs2-Client-Id"))
	assert.Equal(t, "1", req.Headers.Get("X-Existing"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &identifier.Request{Operation: "GetUser", Method: http.MethodGet, Path: "/user/alice"}

	require.NoError(t, identifier.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, identifier.LoggingResponseInterceptor(logger)(context.Background(), req,
		&identifier.Response{StatusCode: http.StatusOK}))
	require.NoError(t, identifier.LoggingResponseInterceptor(logger)(context.Background(), req,
		&identifier.Response{StatusCode: http.StatusNotFound, Error: &identifier.ResponseError{StatusCode: http.StatusNotFound}}))

	assert.Equal(t, []string{"debug", "debug", "error"}, logger.levels)
	assert.Equal(t, []string{"API Request", "API Response", "API Response Error"}, logger.messages)
}
