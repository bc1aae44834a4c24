package tmdb

import "context"

// ChangesClient provides access to the change list endpoints. The
// optional start_date/end_date filters go through QueryParams.Extra.
type ChangesClient interface {
	// Movies returns the movie ids changed in the window.
	Movies(ctx context.Context, params *QueryParams) (*Page[ChangedEntry], error)
	// TV returns the TV series ids changed in the window.
	TV(ctx context.Context, params *QueryParams) (*Page[ChangedEntry], error)
	// People returns the person ids changed in the window.
	People(ctx context.Context, params *QueryParams) (*Page[ChangedEntry], error)
}

// ChangedEntry identifies a single changed resource.
type ChangedEntry struct {
	ID    int64 `json:"id"    yaml:"id"`
	Adult *bool `json:"adult" yaml:"adult"`
}
