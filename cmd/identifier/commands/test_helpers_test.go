package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/idclient"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// fakeService answers calls by operation name and records them.
type fakeService struct {
	mu        sync.Mutex
	requests  []*identifier.Request
	responses map[string][]interface{}
	errs      map[string]error
}

// reply queues bodies for an operation; the last one is repeated.
func (f *fakeService) reply(operation string, bodies ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.responses == nil {
		f.responses = map[string][]interface{}{}
	}

	f.responses[operation] = append(f.responses[operation], bodies...)
}

func (f *fakeService) fail(operation string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errs == nil {
		f.errs = map[string]error{}
	}

	f.errs[operation] = err
}

func (f *fakeService) Do(ctx context.Context, req *identifier.Request) (*identifier.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)

	if err := f.errs[req.Operation]; err != nil {
		return nil, err
	}

	body := interface{}(map[string]interface{}{})

	queued := f.responses[req.Operation]
	if len(queued) > 0 {
		body = queued[0]
		if len(queued) > 1 {
			f.responses[req.Operation] = queued[1:]
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return &identifier.Response{StatusCode: http.StatusOK, Body: data}, nil
}

func (f *fakeService) operations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.requests))
	for _, req := range f.requests {
		names = append(names, req.Operation)
	}

	return names
}

func (f *fakeService) last(t *testing.T) *identifier.Request {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.requests, "no request was sent")

	return f.requests[len(f.requests)-1]
}

// useFakeService points ClientFactory at a fake service and resets viper
// when the test ends.
func useFakeService(t *testing.T) *fakeService {
	t.Helper()

	viper.Reset()

	service := &fakeService{}
	original := ClientFactory

	ClientFactory = func() (identifier.Client, error) {
		return idclient.NewWithTransport(&identifier.Config{}, service)
	}

	t.Cleanup(func() {
		ClientFactory = original

		viper.Reset()
	})

	return service
}

// execute runs cmd with args and returns what it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
