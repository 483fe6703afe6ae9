// Package idclient provides the primary entry point for constructing an
// identifier API client that implements the identifier.Client interface.
//
// It layers configuration defaults and the HTTP transport on top of the
// resource interfaces and types defined in the identifier package. Most
// applications should import idclient to build a client, then use the
// returned identifier.Client to reach Users(), Identifiers() and
// SecurityPolicies().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/identifier-client/pkg/identifier"
//	  "github.com/fivetwenty-io/identifier-client/pkg/idclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // A region and a bearer token are enough for the hosted service.
//	  cli, err := idclient.NewWithToken(ctx, "ap-northeast-1", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or point the client at a mock server for tests. The "{endpoint}"
//	  // placeholder is replaced by the endpoint alias of each call.
//	  cli, err = idclient.New(ctx, &identifier.Config{
//	    BaseURL:  "http://localhost:8080/{endpoint}",
//	    Endpoint: "identifier",
//	  })
//
//	  // Or read IDENTIFIER_REGION, IDENTIFIER_ACCESS_TOKEN and friends.
//	  cfg, err := idclient.LoadConfigFromEnv()
//	  if err != nil { log.Fatal(err) }
//	  cli, err = idclient.New(ctx, cfg)
//
//	  user, err := cli.Users().Get(ctx, &identifier.GetUserRequest{UserName: "alice"})
//	  if err != nil { log.Fatal(err) }
//	  _ = user
//	}
//
// Configuration highlights (identifier.Config)
//   - Region: substituted for "{region}" in BaseURL. Required for the hosted service.
//   - Endpoint: endpoint alias, "identifier" by default. Fixed for the client's lifetime.
//   - BaseURL: URL template, "https://{endpoint}.{region}.gs2io.com" by default.
//   - AccessToken / RequestInterceptors: credentials and request signing.
//   - RetryMax/RetryWaitMin/RetryWaitMax: retry policy for transient failures.
//   - RateLimit/RateBurst: client-side rate limiting.
//   - Logger/Debug: structured logging of HTTP traffic.
//   - MetricsRegisterer: Prometheus request metrics.
//
// Errors
//
// Invalid requests fail locally with an error for which
// identifier.IsInvalidArgument is true. API errors are *identifier.ResponseError;
// use identifier.IsNotFound and friends to branch on them.
package idclient
