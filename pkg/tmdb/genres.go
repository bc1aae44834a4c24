package tmdb

import "context"

// GenresClient provides access to the genre list endpoints.
type GenresClient interface {
	// Movie returns the official movie genres.
	Movie(ctx context.Context, params *QueryParams) (*GenreList, error)
	// TV returns the official TV genres.
	TV(ctx context.Context, params *QueryParams) (*GenreList, error)
}

// GenreList is the envelope returned by the genre list endpoints.
type GenreList struct {
	Genres []Genre `json:"genres" yaml:"genres"`
}
