package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRequiredFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(*Client) error
		wantFields []string
	}{
		{
			name: "get user without request",
			call: func(c *Client) error {
				_, err := c.Users().Get(ctx, nil)

				return err
			},
		},
		{
			name: "get user with empty name",
			call: func(c *Client) error {
				_, err := c.Users().Get(ctx, &identifier.GetUserRequest{})

				return err
			},
			wantFields: []string{"userName"},
		},
		{
			name: "delete user with empty name",
			call: func(c *Client) error {
				return c.Users().Delete(ctx, &identifier.DeleteUserRequest{})
			},
			wantFields: []string{"userName"},
		},
		{
			name: "delete user without request",
			call: func(c *Client) error {
				return c.Users().Delete(ctx, nil)
			},
		},
		{
			name: "list identifiers with empty user",
			call: func(c *Client) error {
				_, err := c.Identifiers().List(ctx, &identifier.ListIdentifiersRequest{})

				return err
			},
			wantFields: []string{"userName"},
		},
		{
			name: "list identifiers without request",
			call: func(c *Client) error {
				_, err := c.Identifiers().List(ctx, nil)

				return err
			},
		},
		{
			name: "create identifier with empty user",
			call: func(c *Client) error {
				_, err := c.Identifiers().Create(ctx, &identifier.CreateIdentifierRequest{})

				return err
			},
			wantFields: []string{"userName"},
		},
		{
			name: "delete identifier with both fields empty",
			call: func(c *Client) error {
				return c.Identifiers().Delete(ctx, &identifier.DeleteIdentifierRequest{})
			},
			wantFields: []string{"userName", "identifierId"},
		},
		{
			name: "delete identifier without identifier id",
			call: func(c *Client) error {
				return c.Identifiers().Delete(ctx, &identifier.DeleteIdentifierRequest{UserName: "alice"})
			},
			wantFields: []string{"identifierId"},
		},
		{
			name: "attached policies with empty user",
			call: func(c *Client) error {
				_, err := c.SecurityPolicies().ListAttached(ctx, &identifier.ListAttachedSecurityPoliciesRequest{})

				return err
			},
			wantFields: []string{"userName"},
		},
		{
			name: "attach with empty user",
			call: func(c *Client) error {
				return c.SecurityPolicies().Attach(ctx, &identifier.AttachSecurityPolicyRequest{
					SecurityPolicyID: identifier.String("grn:policy:admin"),
				})
			},
			wantFields: []string{"userName"},
		},
		{
			name: "detach without policy id",
			call: func(c *Client) error {
				return c.SecurityPolicies().Detach(ctx, &identifier.DetachSecurityPolicyRequest{UserName: "alice"})
			},
			wantFields: []string{"securityPolicyId"},
		},
		{
			name: "get policy with empty name",
			call: func(c *Client) error {
				_, err := c.SecurityPolicies().Get(ctx, &identifier.GetSecurityPolicyRequest{})

				return err
			},
			wantFields: []string{"securityPolicyName"},
		},
		{
			name: "update policy with empty name",
			call: func(c *Client) error {
				_, err := c.SecurityPolicies().Update(ctx, &identifier.UpdateSecurityPolicyRequest{
					Policy: identifier.String("{}"),
				})

				return err
			},
			wantFields: []string{"securityPolicyName"},
		},
		{
			name: "update policy without request",
			call: func(c *Client) error {
				_, err := c.SecurityPolicies().Update(ctx, nil)

				return err
			},
		},
		{
			name: "delete policy with empty name",
			call: func(c *Client) error {
				return c.SecurityPolicies().Delete(ctx, &identifier.DeleteSecurityPolicyRequest{})
			},
			wantFields: []string{"securityPolicyName"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			transport := newRecordingTransport(emptyPage)
			client := NewTestClient(t, transport)

			err := testCase.call(client)
			require.Error(t, err)
			assert.True(t, identifier.IsInvalidArgument(err))
			assert.Equal(t, 0, transport.calls(), "no request may be sent")

			validationErr := &identifier.ValidationError{}
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, testCase.wantFields, validationErr.Fields)
		})
	}
}
