package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// Test static errors.
var (
	ErrTestTransport = errors.New("connection reset")
)

// recordingTransport records every request and replies with a canned response.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*identifier.Request

	statusCode int
	body       string
	err        error
}

func newRecordingTransport(body string) *recordingTransport {
	return &recordingTransport{statusCode: 200, body: body}
}

func (r *recordingTransport) Do(ctx context.Context, req *identifier.Request) (*identifier.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)

	if r.err != nil {
		return nil, r.err
	}

	return &identifier.Response{StatusCode: r.statusCode, Body: []byte(r.body)}, nil
}

func (r *recordingTransport) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests)
}

func (r *recordingTransport) last(t *testing.T) *identifier.Request {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests, "no request was sent")

	return r.requests[len(r.requests)-1]
}

// bodyJSON returns the JSON the transport would send for req.
func bodyJSON(t *testing.T, req *identifier.Request) string {
	t.Helper()

	require.NotNil(t, req.Body, "request has no body")

	data, err := json.Marshal(req.Body)
	require.NoError(t, err)

	return string(data)
}

// NewTestClient creates a client that sends every call to transport.
func NewTestClient(t *testing.T, transport identifier.Transport) *Client {
	t.Helper()

	client, err := NewWithTransport(&identifier.Config{}, transport)
	require.NoError(t, err)

	return client
}

const (
	userItem = `{"item":{"userId":"grn:user:alice","ownerId":"owner-1","name":"alice","createAt":1700000000000}}`

	identifierItem = `{"item":{"identifierId":"grn:identifier:1","ownerId":"owner-1",` +
		`"clientId":"client-1","clientSecret":"secret-1","createAt":1700000000000}}`

	securityPolicyItem = `{"item":{"securityPolicyId":"grn:policy:admin","ownerId":"owner-1","name":"admin",` +
		`"policy":"{\"Version\":\"2016-04-01\",\"Statements\":[]}","createAt":1700000000000,"updateAt":1700000001000}}`

	emptyPage = `{"items":[]}`
)
