package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// DiscoverClient implements tmdb.DiscoverClient.
type DiscoverClient struct {
	httpClient *http.Client
}

// NewDiscoverClient creates a new discover client.
func NewDiscoverClient(httpClient *http.Client) *DiscoverClient {
	return &DiscoverClient{httpClient: httpClient}
}

// Movies implements tmdb.DiscoverClient.Movies.
func (c *DiscoverClient) Movies(ctx context.Context, filters *tmdb.DiscoverMovieFilters) (*tmdb.Page[tmdb.Movie], error) {
	if filters == nil {
		return nil, tmdb.ErrFiltersRequired
	}

	values, err := filters.ToValues()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/discover/movie", values)
	if err != nil {
		return nil, fmt.Errorf("discovering movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing discover movies response: %w", err)
	}

	return &page, nil
}

// TV implements tmdb.DiscoverClient.TV.
func (c *DiscoverClient) TV(ctx context.Context, filters *tmdb.DiscoverTVFilters) (*tmdb.Page[tmdb.TVShow], error) {
	if filters == nil {
		return nil, tmdb.ErrFiltersRequired
	}

	values, err := filters.ToValues()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/discover/tv", values)
	if err != nil {
		return nil, fmt.Errorf("discovering tv series: %w", err)
	}

	var page tmdb.Page[tmdb.TVShow]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing discover tv response: %w", err)
	}

	return &page, nil
}
