package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// ErrEmptyResponse is returned when a transport reports success without a response.
var ErrEmptyResponse = errors.New("transport returned no response")

// caller addresses requests to one endpoint of the identifier service.
type caller struct {
	transport identifier.Transport
	endpoint  string
}

func newCaller(transport identifier.Transport, endpoint string) *caller {
	return &caller{
		transport: transport,
		endpoint:  endpoint,
	}
}

// do sends one operation. Transport errors are returned unchanged.
func (c *caller) do(
	ctx context.Context, operation, method, path string, query url.Values, body interface{},
) (*identifier.Response, error) {
	req := &identifier.Request{
		Service:   identifier.ServiceName,
		Operation: operation,
		Endpoint:  c.endpoint,
		Method:    method,
		Path:      path,
		Query:     query,
		Body:      body,
		Headers:   make(http.Header),
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%s: %w", operation, ErrEmptyResponse)
	}

	return resp, nil
}

func (c *caller) get(ctx context.Context, operation, path string, query url.Values) (*identifier.Response, error) {
	return c.do(ctx, operation, http.MethodGet, path, query, nil)
}

func (c *caller) post(ctx context.Context, operation, path string, body interface{}) (*identifier.Response, error) {
	return c.do(ctx, operation, http.MethodPost, path, nil, body)
}

func (c *caller) put(ctx context.Context, operation, path string, body interface{}) (*identifier.Response, error) {
	return c.do(ctx, operation, http.MethodPut, path, nil, body)
}

func (c *caller) delete(ctx context.Context, operation, path string) (*identifier.Response, error) {
	return c.do(ctx, operation, http.MethodDelete, path, nil, nil)
}

// decodeItem unwraps a single-item response of the form {"item": {...}}.
// The item keeps its own payload in Raw.
func decodeItem[T any](operation string, resp *identifier.Response) (*T, error) {
	var envelope identifier.ItemResponse[T]

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", operation, err)
	}

	return &envelope.Item, nil
}

// decodePage decodes a list response of the form {"items": [...], "nextPageToken": "..."}.
func decodePage[T any](operation string, resp *identifier.Response) (*identifier.Page[T], error) {
	var page identifier.Page[T]

	err := json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", operation, err)
	}

	page.Raw = append(json.RawMessage(nil), resp.Body...)

	if page.Items == nil {
		page.Items = []T{}
	}

	return &page, nil
}

// queryOf returns the page parameters as a query, or nil when none are set.
func queryOf(params *identifier.PageParams) url.Values {
	values := params.ToValues()
	if len(values) == 0 {
		return nil
	}

	return values
}
