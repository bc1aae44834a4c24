// Package tmdbclient provides the primary entry point for constructing
// a TMDB API client that implements the tmdb.Client interface.
//
// It layers configuration, HTTP transport and authentication on top of
// the resource interfaces and types defined in the tmdb package. Most
// applications should import tmdbclient to build a client, then use the
// returned tmdb.Client to access resource-specific clients, for example
// Movies(), TV(), Search(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/moviekit/tmdb-client/pkg/tmdb"
//	  "github.com/moviekit/tmdb-client/pkg/tmdbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With a v3 API key:
//	  cli, err := tmdbclient.NewWithAPIKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a v4 read access token:
//	  cli, err = tmdbclient.NewWithBearerToken("eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the tmdb.Client interface
//	  movie, err := cli.Movies().Get(ctx, 550, tmdb.NewQueryParams().WithLanguage("en-US"))
//	  if err != nil { log.Fatal(err) }
//	  _ = movie
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithBearerToken that wrap New with the appropriate configuration.
package tmdbclient
