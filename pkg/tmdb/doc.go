// Package tmdb defines the public interface for The Movie Database (TMDB)
// v3 API client.
//
// The package contains the Client interface, typed request and response
// structures for every supported endpoint, query parameter builders, and
// error types. Use github.com/moviekit/tmdb-client/pkg/tmdbclient to obtain
// a concrete client:
//
//	client, err := tmdbclient.NewWithAPIKey("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, err := client.Movies().Get(ctx, 550, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(movie.Title)
//
// All operations are single HTTP GET requests. List endpoints return a
// Page[T] envelope; PageIterator can walk every page:
//
//	params := tmdb.NewQueryParams().WithLanguage("en-US")
//	it := tmdb.NewPageIterator(ctx, func(ctx context.Context, p *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
//		return client.Movies().Popular(ctx, p)
//	}, params)
//	for it.HasNext() {
//		movie, err := it.Next()
//		...
//	}
package tmdb
