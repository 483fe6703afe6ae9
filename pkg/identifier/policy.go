package identifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Policy document constants.
const (
	PolicyVersion  = "2016-04-01"
	EffectAllow    = "Allow"
	EffectDeny     = "Deny"
	AnyResource    = "*"
	actionWildcard = "*"
)

// Static errors for err113 compliance.
var (
	ErrPolicyNoStatements    = errors.New("policy has no statements")
	ErrPolicyInvalidEffect   = errors.New("policy statement effect must be Allow or Deny")
	ErrPolicyNoActions       = errors.New("policy statement has no actions")
	ErrPolicyInvalidWildcard = errors.New("action wildcard is only permitted once, at the end")
	ErrPolicyResourceScoped  = errors.New("per-resource scoping is not supported")
)

// PolicyDocument is the parsed form of SecurityPolicy.Policy.
//
// Documents resemble IAM policies with two restrictions: access cannot be
// scoped to individual resources, and an action may carry a single wildcard
// only as its last character (for example "Gs2Inbox:*" or "Gs2Inbox:Describe*").
type PolicyDocument struct {
	Version    string            `json:"Version"    yaml:"Version"`
	Statements []PolicyStatement `json:"Statements" yaml:"Statements"`
}

// PolicyStatement grants or denies a set of actions.
type PolicyStatement struct {
	Effect    string   `json:"Effect"              yaml:"Effect"`
	Actions   []string `json:"Actions"             yaml:"Actions"`
	Resources []string `json:"Resources,omitempty" yaml:"Resources,omitempty"`
}

// NewPolicyDocument creates a document with the current version and the given statements.
func NewPolicyDocument(statements ...PolicyStatement) *PolicyDocument {
	return &PolicyDocument{
		Version:    PolicyVersion,
		Statements: statements,
	}
}

// AllowStatement creates an Allow statement for actions on any resource.
func AllowStatement(actions ...string) PolicyStatement {
	return PolicyStatement{Effect: EffectAllow, Actions: actions, Resources: []string{AnyResource}}
}

// DenyStatement creates a Deny statement for actions on any resource.
func DenyStatement(actions ...string) PolicyStatement {
	return PolicyStatement{Effect: EffectDeny, Actions: actions, Resources: []string{AnyResource}}
}

// ParsePolicyDocument parses the JSON text of a policy.
func ParsePolicyDocument(text string) (*PolicyDocument, error) {
	var doc PolicyDocument

	err := json.Unmarshal([]byte(text), &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing policy document: %w", err)
	}

	return &doc, nil
}

// Document parses the policy document of a security policy.
func (p *SecurityPolicy) Document() (*PolicyDocument, error) {
	return ParsePolicyDocument(p.Policy)
}

// String renders the document as the JSON text sent on the wire.
func (d *PolicyDocument) String() string {
	data, err := json.Marshal(d)
	if err != nil {
		return ""
	}

	return string(data)
}

// Validate checks the document against the constraints of the service.
func (d *PolicyDocument) Validate() error {
	if d == nil || len(d.Statements) == 0 {
		return ErrPolicyNoStatements
	}

	for i, statement := range d.Statements {
		err := statement.validate()
		if err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}

	return nil
}

func (s PolicyStatement) validate() error {
	if s.Effect != EffectAllow && s.Effect != EffectDeny {
		return fmt.Errorf("%w: %q", ErrPolicyInvalidEffect, s.Effect)
	}

	if len(s.Actions) == 0 {
		return ErrPolicyNoActions
	}

	for _, action := range s.Actions {
		if !validAction(action) {
			return fmt.Errorf("%w: %q", ErrPolicyInvalidWildcard, action)
		}
	}

	for _, resource := range s.Resources {
		if resource != AnyResource {
			return fmt.Errorf("%w: %q", ErrPolicyResourceScoped, resource)
		}
	}

	return nil
}

func validAction(action string) bool {
	if action == "" {
		return false
	}

	idx := strings.Index(action, actionWildcard)

	return idx == -1 || idx == len(action)-1
}
