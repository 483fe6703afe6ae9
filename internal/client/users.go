package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// UsersClient implements identifier.UsersClient.
type UsersClient struct {
	caller *caller
}

// NewUsersClient creates a new users client.
func NewUsersClient(caller *caller) *UsersClient {
	return &UsersClient{
		caller: caller,
	}
}

// List implements identifier.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, request *identifier.ListUsersRequest) (*identifier.Page[identifier.User], error) {
	err := validateRequest(constants.OperationDescribeUser, request, false)
	if err != nil {
		return nil, err
	}

	var params *identifier.PageParams
	if request != nil {
		params = &request.PageParams
	}

	resp, err := c.caller.get(ctx, constants.OperationDescribeUser, constants.APIPathUsers, queryOf(params))
	if err != nil {
		return nil, err
	}

	return decodePage[identifier.User](constants.OperationDescribeUser, resp)
}

// Create implements identifier.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *identifier.CreateUserRequest) (*identifier.User, error) {
	err := validateRequest(constants.OperationCreateUser, request, false)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &identifier.CreateUserRequest{}
	}

	resp, err := c.caller.post(ctx, constants.OperationCreateUser, constants.APIPathUsers, request)
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.User](constants.OperationCreateUser, resp)
}

// Get implements identifier.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, request *identifier.GetUserRequest) (*identifier.User, error) {
	err := validateRequest(constants.OperationGetUser, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.get(ctx, constants.OperationGetUser, userPath(request.UserName), nil)
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.User](constants.OperationGetUser, resp)
}

// Delete implements identifier.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, request *identifier.DeleteUserRequest) error {
	err := validateRequest(constants.OperationDeleteUser, request, true)
	if err != nil {
		return err
	}

	_, err = c.caller.delete(ctx, constants.OperationDeleteUser, userPath(request.UserName))

	return err
}

// userPath escapes userName so it always addresses a single path segment.
func userPath(userName string) string {
	return constants.APIPathUsers + "/" + url.PathEscape(userName)
}
