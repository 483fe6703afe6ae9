package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// IdentifiersClient implements identifier.IdentifiersClient.
type IdentifiersClient struct {
	caller *caller
}

// NewIdentifiersClient creates a new identifiers client.
func NewIdentifiersClient(caller *caller) *IdentifiersClient {
	return &IdentifiersClient{
		caller: caller,
	}
}

// List implements identifier.IdentifiersClient.List.
func (c *IdentifiersClient) List(
	ctx context.Context, request *identifier.ListIdentifiersRequest,
) (*identifier.Page[identifier.Identifier], error) {
	err := validateRequest(constants.OperationDescribeIdentifier, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.get(ctx, constants.OperationDescribeIdentifier,
		identifiersPath(request.UserName), queryOf(&request.PageParams))
	if err != nil {
		return nil, err
	}

	return decodePage[identifier.Identifier](constants.OperationDescribeIdentifier, resp)
}

// Create implements identifier.IdentifiersClient.Create. The returned
// identifier carries the client secret, which is not available afterwards.
func (c *IdentifiersClient) Create(
	ctx context.Context, request *identifier.CreateIdentifierRequest,
) (*identifier.Identifier, error) {
	err := validateRequest(constants.OperationCreateIdentifier, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.post(ctx, constants.OperationCreateIdentifier, identifiersPath(request.UserName), struct{}{})
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.Identifier](constants.OperationCreateIdentifier, resp)
}

// Delete implements identifier.IdentifiersClient.Delete.
func (c *IdentifiersClient) Delete(ctx context.Context, request *identifier.DeleteIdentifierRequest) error {
	err := validateRequest(constants.OperationDeleteIdentifier, request, true)
	if err != nil {
		return err
	}

	path := identifiersPath(request.UserName) + "/" + url.PathEscape(request.IdentifierID)
	_, err = c.caller.delete(ctx, constants.OperationDeleteIdentifier, path)

	return err
}

func identifiersPath(userName string) string {
	return userPath(userName) + constants.PathSegmentIdentifier
}
