// Package identifier provides types, interfaces, and helpers for working with
// the identifier (identity and access management) API.
//
// # Overview
//
// The identifier package defines the domain types (User, Identifier,
// SecurityPolicy, Page) and the interfaces for resource-oriented clients
// (UsersClient, IdentifiersClient, SecurityPoliciesClient). A concrete
// implementation is provided by the idclient package, which wires
// configuration and the HTTP transport. Most consumers should import idclient
// to construct a client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := idclient.New(ctx, &identifier.Config{Region: "ap-northeast-1", AccessToken: token})
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, &identifier.ListUsersRequest{
//	    PageParams: identifier.PageParams{Limit: 50},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Requests and validation
//
// Each operation takes its own request struct. Fields tagged as required must
// be non-empty; otherwise the call fails with a ValidationError wrapping
// ErrInvalidArgument before anything is sent. Optional body fields are
// pointers (see String) and are only sent when set.
//
// # Pagination
//
// List operations return a Page. When NextPageToken is non-empty, pass it back
// as PageParams.PageToken to request the following page.
//
// # Errors
//
// Error responses from the API are represented by ResponseError. Helpers such
// as IsNotFound, IsUnauthorized, and IsForbidden make it easy to branch on
// common cases.
//
// # Transports and interceptors
//
// The Transport interface is the seam between the typed clients and the
// network. The default transport handles retries, rate limiting, metrics and
// interceptors; a custom Transport can be supplied through
// idclient.NewWithTransport, which is how tests record calls without a server.
package identifier
