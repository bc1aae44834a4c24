package tmdb

import "context"

// KeywordsClient provides access to the keyword endpoints.
type KeywordsClient interface {
	// Get returns the details of a keyword.
	Get(ctx context.Context, keywordID int64) (*Keyword, error)
}
