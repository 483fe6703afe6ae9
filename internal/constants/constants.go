package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP attempt.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Endpoint resolution.
const (
	// DefaultBaseURL is the URL template of the hosted service.
	DefaultBaseURL = "https://{endpoint}.{region}.gs2io.com"

	// EndpointPlaceholder is replaced by the endpoint alias of a request.
	EndpointPlaceholder = "{endpoint}"

	// RegionPlaceholder is replaced by the configured region.
	RegionPlaceholder = "{region}"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "identifier-client-go"
)

// Operation names of the identifier service.
const (
	OperationDescribeUser           = "DescribeUser"
	OperationCreateUser             = "CreateUser"
	OperationGetUser                = "GetUser"
	OperationDeleteUser             = "DeleteUser"
	OperationDescribeIdentifier     = "DescribeIdentifier"
	OperationCreateIdentifier       = "CreateIdentifier"
	OperationDeleteIdentifier       = "DeleteIdentifier"
	OperationHasSecurityPolicy      = "HasSecurityPolicy"
	OperationAttachSecurityPolicy   = "AttachSecurityPolicy"
	OperationDetachSecurityPolicy   = "DetachSecurityPolicy"
	OperationDescribeSecurityPolicy = "DescribeSecurityPolicy"
	OperationCreateSecurityPolicy   = "CreateSecurityPolicy"
	OperationGetSecurityPolicy      = "GetSecurityPolicy"
	OperationUpdateSecurityPolicy   = "UpdateSecurityPolicy"
	OperationDeleteSecurityPolicy   = "DeleteSecurityPolicy"
)

// API path constants.
const (
	// APIPathUsers for the users collection.
	APIPathUsers = "/user"
	// APIPathSecurityPolicies for the security policies collection.
	APIPathSecurityPolicies = "/securityPolicy"
	// APIPathCommonSecurityPolicies for the shared security policies collection.
	APIPathCommonSecurityPolicies = "/securityPolicy/common"
	// PathSegmentIdentifier is the identifier sub-collection of a user.
	PathSegmentIdentifier = "/identifier"
	// PathSegmentSecurityPolicy is the attached policy sub-collection of a user.
	PathSegmentSecurityPolicy = "/securityPolicy"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page for the CLI.
	DefaultPageSize = 30

	// MaxPagesFetched bounds --all fetches in the CLI.
	MaxPagesFetched = 100
)

// HTTP headers.
const (
	// HeaderRequestID carries the per-request identifier.
	HeaderRequestID = "X-Request-Id"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// TimestampFormat is used for createAt/updateAt columns.
	TimestampFormat = "2006-01-02 15:04:05"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"
	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
	// FormatTable for table output format.
	FormatTable = "table"
	// JSONIndentSize is the number of spaces for JSON/YAML indentation.
	JSONIndentSize = 2
)
