package constants

import "errors"

// Configuration errors.
var (
	ErrNoRegionConfigured  = errors.New("no region configured, use 'identifier config set region <region>' or --region")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrEmptyToken          = errors.New("access token must not be empty")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
)

// Validation errors.
var (
	ErrInvalidPolicyFile  = errors.New("policy must be given with --policy or --policy-file, not both")
	ErrPolicyNotProvided  = errors.New("policy document is required for this operation")
	ErrQueryNoResult      = errors.New("query produced no result")
	ErrConfirmationNeeded = errors.New("refusing to delete without --force")
)
