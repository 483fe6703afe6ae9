package identifier

import "encoding/json"

// Decoded results keep the payload they were decoded from in Raw, so keys
// the service adds later are never lost.

// User represents an account under which API credentials are issued.
type User struct {
	UserID   string          `json:"userId"   yaml:"userId"`
	OwnerID  string          `json:"ownerId"  yaml:"ownerId"`
	Name     string          `json:"name"     yaml:"name"`
	CreateAt int64           `json:"createAt" yaml:"createAt"`
	Raw      json.RawMessage `json:"-"        yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps data in Raw.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User

	err := json.Unmarshal(data, (*plain)(u))
	if err != nil {
		return err
	}

	u.Raw = copyRaw(data)

	return nil
}

// Identifier represents an API credential pair issued to a user.
// ClientSecret is only populated in the response to a create call.
type Identifier struct {
	IdentifierID string `json:"identifierId"           yaml:"identifierId"`
	OwnerID      string `json:"ownerId"                yaml:"ownerId"`
	ClientID     string `json:"clientId"               yaml:"clientId"`
	ClientSecret string `json:"clientSecret,omitempty" yaml:"clientSecret,omitempty"`
	CreateAt     int64  `json:"createAt"               yaml:"createAt"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps data in Raw.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	type plain Identifier

	err := json.Unmarshal(data, (*plain)(i))
	if err != nil {
		return err
	}

	i.Raw = copyRaw(data)

	return nil
}

// SecurityPolicy represents a named permission document.
// Policy holds the document as JSON text; see ParsePolicyDocument.
type SecurityPolicy struct {
	SecurityPolicyID string `json:"securityPolicyId"   yaml:"securityPolicyId"`
	OwnerID          string `json:"ownerId"            yaml:"ownerId"`
	Name             string `json:"name"               yaml:"name"`
	Policy           string `json:"policy"             yaml:"policy"`
	CreateAt         int64  `json:"createAt"           yaml:"createAt"`
	UpdateAt         int64  `json:"updateAt,omitempty" yaml:"updateAt,omitempty"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps data in Raw.
func (p *SecurityPolicy) UnmarshalJSON(data []byte) error {
	type plain SecurityPolicy

	err := json.Unmarshal(data, (*plain)(p))
	if err != nil {
		return err
	}

	p.Raw = copyRaw(data)

	return nil
}

// AttachedSecurityPolicy is one entry of the policies attached to a user.
// The service reports these in the identifier summary shape.
type AttachedSecurityPolicy struct {
	IdentifierID string `json:"identifierId" yaml:"identifierId"`
	OwnerID      string `json:"ownerId"      yaml:"ownerId"`
	ClientID     string `json:"clientId"     yaml:"clientId"`
	CreateAt     int64  `json:"createAt"     yaml:"createAt"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the known fields and keeps data in Raw.
func (a *AttachedSecurityPolicy) UnmarshalJSON(data []byte) error {
	type plain AttachedSecurityPolicy

	err := json.Unmarshal(data, (*plain)(a))
	if err != nil {
		return err
	}

	a.Raw = copyRaw(data)

	return nil
}

// Page represents one page of a list response.
// NextPageToken is empty on the last page. Raw holds the whole response
// payload when the page was returned by a client.
type Page[T any] struct {
	Items         []T             `json:"items"                   yaml:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
	Raw           json.RawMessage `json:"-"                       yaml:"-"`
}

// HasNext reports whether another page can be requested.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.NextPageToken != ""
}

// ItemResponse represents the envelope of a single-item response.
type ItemResponse[T any] struct {
	Item T `json:"item" yaml:"item"`
}

// UsersPage is a page of users.
type UsersPage = Page[User]

// IdentifiersPage is a page of identifiers.
type IdentifiersPage = Page[Identifier]

// SecurityPoliciesPage is a page of security policies.
type SecurityPoliciesPage = Page[SecurityPolicy]

// AttachedSecurityPoliciesPage is a page of policies attached to a user.
type AttachedSecurityPoliciesPage = Page[AttachedSecurityPolicy]

func copyRaw(data []byte) json.RawMessage {
	return append(json.RawMessage(nil), data...)
}
