package identifier

import (
	"net/url"
	"strconv"
)

// PageParams holds the optional pagination parameters of list operations.
type PageParams struct {
	// PageToken is the opaque cursor returned as NextPageToken by a previous call.
	PageToken string `param:"pageToken"`
	// Limit is the maximum number of items to return.
	Limit int `param:"limit" validate:"omitempty,min=1"`
}

// NewPageParams creates empty page parameters.
func NewPageParams() *PageParams {
	return &PageParams{}
}

// WithPageToken sets the page token.
func (p *PageParams) WithPageToken(token string) *PageParams {
	p.PageToken = token

	return p
}

// WithLimit sets the page size.
func (p *PageParams) WithLimit(limit int) *PageParams {
	p.Limit = limit

	return p
}

// ToValues converts the parameters to a query. Unset values are left out.
func (p *PageParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.PageToken != "" {
		values.Set("pageToken", p.PageToken)
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	return values
}

// ListUsersRequest is the input of Users().List.
type ListUsersRequest struct {
	PageParams
}

// CreateUserRequest is the input of Users().Create.
type CreateUserRequest struct {
	Name *string `json:"name,omitempty" param:"name"`
}

// GetUserRequest is the input of Users().Get.
type GetUserRequest struct {
	UserName string `param:"userName" validate:"required"`
}

// DeleteUserRequest is the input of Users().Delete.
type DeleteUserRequest struct {
	UserName string `param:"userName" validate:"required"`
}

// ListIdentifiersRequest is the input of Identifiers().List.
type ListIdentifiersRequest struct {
	UserName string `param:"userName" validate:"required"`

	PageParams
}

// CreateIdentifierRequest is the input of Identifiers().Create.
type CreateIdentifierRequest struct {
	UserName string `param:"userName" validate:"required"`
}

// DeleteIdentifierRequest is the input of Identifiers().Delete.
type DeleteIdentifierRequest struct {
	UserName     string `param:"userName"     validate:"required"`
	IdentifierID string `param:"identifierId" validate:"required"`
}

// ListAttachedSecurityPoliciesRequest is the input of SecurityPolicies().ListAttached.
type ListAttachedSecurityPoliciesRequest struct {
	UserName string `param:"userName" validate:"required"`
}

// AttachSecurityPolicyRequest is the input of SecurityPolicies().Attach.
type AttachSecurityPolicyRequest struct {
	UserName         string  `json:"-"                          param:"userName" validate:"required"`
	SecurityPolicyID *string `json:"securityPolicyId,omitempty" param:"securityPolicyId"`
}

// DetachSecurityPolicyRequest is the input of SecurityPolicies().Detach.
type DetachSecurityPolicyRequest struct {
	UserName         string `param:"userName"         validate:"required"`
	SecurityPolicyID string `param:"securityPolicyId" validate:"required"`
}

// ListSecurityPoliciesRequest is the input of SecurityPolicies().List and ListCommon.
type ListSecurityPoliciesRequest struct {
	PageParams
}

// CreateSecurityPolicyRequest is the input of SecurityPolicies().Create.
type CreateSecurityPolicyRequest struct {
	Name   *string `json:"name,omitempty"   param:"name"`
	Policy *string `json:"policy,omitempty" param:"policy"`
}

// GetSecurityPolicyRequest is the input of SecurityPolicies().Get.
type GetSecurityPolicyRequest struct {
	SecurityPolicyName string `param:"securityPolicyName" validate:"required"`
}

// UpdateSecurityPolicyRequest is the input of SecurityPolicies().Update.
type UpdateSecurityPolicyRequest struct {
	SecurityPolicyName string  `json:"-"                param:"securityPolicyName" validate:"required"`
	Policy             *string `json:"policy,omitempty" param:"policy"`
}

// DeleteSecurityPolicyRequest is the input of SecurityPolicies().Delete.
type DeleteSecurityPolicyRequest struct {
	SecurityPolicyName string `param:"securityPolicyName" validate:"required"`
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string {
	return &s
}
