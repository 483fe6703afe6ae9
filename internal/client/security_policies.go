package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/identifier-client/internal/constants"
	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// SecurityPoliciesClient implements identifier.SecurityPoliciesClient.
type SecurityPoliciesClient struct {
	caller *caller
}

// NewSecurityPoliciesClient creates a new security policies client.
func NewSecurityPoliciesClient(caller *caller) *SecurityPoliciesClient {
	return &SecurityPoliciesClient{
		caller: caller,
	}
}

// List implements identifier.SecurityPoliciesClient.List.
func (c *SecurityPoliciesClient) List(
	ctx context.Context, request *identifier.ListSecurityPoliciesRequest,
) (*identifier.Page[identifier.SecurityPolicy], error) {
	return c.list(ctx, constants.APIPathSecurityPolicies, request)
}

// ListCommon implements identifier.SecurityPoliciesClient.ListCommon.
// Common policies are shared by all accounts and cannot be modified.
func (c *SecurityPoliciesClient) ListCommon(
	ctx context.Context, request *identifier.ListSecurityPoliciesRequest,
) (*identifier.Page[identifier.SecurityPolicy], error) {
	return c.list(ctx, constants.APIPathCommonSecurityPolicies, request)
}

// Both listings share the DescribeSecurityPolicy operation.
func (c *SecurityPoliciesClient) list(
	ctx context.Context, path string, request *identifier.ListSecurityPoliciesRequest,
) (*identifier.Page[identifier.SecurityPolicy], error) {
	err := validateRequest(constants.OperationDescribeSecurityPolicy, request, false)
	if err != nil {
		return nil, err
	}

	var params *identifier.PageParams
	if request != nil {
		params = &request.PageParams
	}

	resp, err := c.caller.get(ctx, constants.OperationDescribeSecurityPolicy, path, queryOf(params))
	if err != nil {
		return nil, err
	}

	return decodePage[identifier.SecurityPolicy](constants.OperationDescribeSecurityPolicy, resp)
}

// Create implements identifier.SecurityPoliciesClient.Create.
func (c *SecurityPoliciesClient) Create(
	ctx context.Context, request *identifier.CreateSecurityPolicyRequest,
) (*identifier.SecurityPolicy, error) {
	err := validateRequest(constants.OperationCreateSecurityPolicy, request, false)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &identifier.CreateSecurityPolicyRequest{}
	}

	resp, err := c.caller.post(ctx, constants.OperationCreateSecurityPolicy, constants.APIPathSecurityPolicies, request)
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.SecurityPolicy](constants.OperationCreateSecurityPolicy, resp)
}

// Get implements identifier.SecurityPoliciesClient.Get.
func (c *SecurityPoliciesClient) Get(
	ctx context.Context, request *identifier.GetSecurityPolicyRequest,
) (*identifier.SecurityPolicy, error) {
	err := validateRequest(constants.OperationGetSecurityPolicy, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.get(ctx, constants.OperationGetSecurityPolicy, securityPolicyPath(request.SecurityPolicyName), nil)
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.SecurityPolicy](constants.OperationGetSecurityPolicy, resp)
}

// Update implements identifier.SecurityPoliciesClient.Update.
func (c *SecurityPoliciesClient) Update(
	ctx context.Context, request *identifier.UpdateSecurityPolicyRequest,
) (*identifier.SecurityPolicy, error) {
	err := validateRequest(constants.OperationUpdateSecurityPolicy, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.put(ctx, constants.OperationUpdateSecurityPolicy,
		securityPolicyPath(request.SecurityPolicyName), request)
	if err != nil {
		return nil, err
	}

	return decodeItem[identifier.SecurityPolicy](constants.OperationUpdateSecurityPolicy, resp)
}

// Delete implements identifier.SecurityPoliciesClient.Delete.
func (c *SecurityPoliciesClient) Delete(ctx context.Context, request *identifier.DeleteSecurityPolicyRequest) error {
	err := validateRequest(constants.OperationDeleteSecurityPolicy, request, true)
	if err != nil {
		return err
	}

	_, err = c.caller.delete(ctx, constants.OperationDeleteSecurityPolicy, securityPolicyPath(request.SecurityPolicyName))

	return err
}

// ListAttached implements identifier.SecurityPoliciesClient.ListAttached.
func (c *SecurityPoliciesClient) ListAttached(
	ctx context.Context, request *identifier.ListAttachedSecurityPoliciesRequest,
) (*identifier.Page[identifier.AttachedSecurityPolicy], error) {
	err := validateRequest(constants.OperationHasSecurityPolicy, request, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.caller.get(ctx, constants.OperationHasSecurityPolicy, attachedPath(request.UserName), nil)
	if err != nil {
		return nil, err
	}

	return decodePage[identifier.AttachedSecurityPolicy](constants.OperationHasSecurityPolicy, resp)
}

// Attach implements identifier.SecurityPoliciesClient.Attach.
func (c *SecurityPoliciesClient) Attach(ctx context.Context, request *identifier.AttachSecurityPolicyRequest) error {
	err := validateRequest(constants.OperationAttachSecurityPolicy, request, true)
	if err != nil {
		return err
	}

	_, err = c.caller.put(ctx, constants.OperationAttachSecurityPolicy, attachedPath(request.UserName), request)

	return err
}

// Detach implements identifier.SecurityPoliciesClient.Detach.
func (c *SecurityPoliciesClient) Detach(ctx context.Context, request *identifier.DetachSecurityPolicyRequest) error {
	err := validateRequest(constants.OperationDetachSecurityPolicy, request, true)
	if err != nil {
		return err
	}

	path := attachedPath(request.UserName) + "/" + url.PathEscape(request.SecurityPolicyID)
	_, err = c.caller.delete(ctx, constants.OperationDetachSecurityPolicy, path)

	return err
}

func securityPolicyPath(name string) string {
	return constants.APIPathSecurityPolicies + "/" + url.PathEscape(name)
}

func attachedPath(userName string) string {
	return userPath(userName) + constants.PathSegmentSecurityPolicy
}
