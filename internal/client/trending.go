package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// TrendingClient implements tmdb.TrendingClient.
type TrendingClient struct {
	httpClient *http.Client
}

// NewTrendingClient creates a new trending client.
func NewTrendingClient(httpClient *http.Client) *TrendingClient {
	return &TrendingClient{httpClient: httpClient}
}

// An empty window falls back to the daily aggregation.
func normalizeWindow(window tmdb.TimeWindow) tmdb.TimeWindow {
	if window == "" {
		return tmdb.TimeWindowDay
	}

	return window
}

// All implements tmdb.TrendingClient.All.
func (c *TrendingClient) All(ctx context.Context, window tmdb.TimeWindow, params *tmdb.QueryParams) (*tmdb.Page[tmdb.MultiResult], error) {
	path := fmt.Sprintf("/trending/all/%s", normalizeWindow(window))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting trending: %w", err)
	}

	var page tmdb.Page[tmdb.MultiResult]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing trending response: %w", err)
	}

	return &page, nil
}

// Movies implements tmdb.TrendingClient.Movies.
func (c *TrendingClient) Movies(ctx context.Context, window tmdb.TimeWindow, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	path := fmt.Sprintf("/trending/movie/%s", normalizeWindow(window))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting trending movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing trending movies response: %w", err)
	}

	return &page, nil
}

// TV implements tmdb.TrendingClient.TV.
func (c *TrendingClient) TV(ctx context.Context, window tmdb.TimeWindow, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	path := fmt.Sprintf("/trending/tv/%s", normalizeWindow(window))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting trending tv series: %w", err)
	}

	var page tmdb.Page[tmdb.TVShow]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing trending tv response: %w", err)
	}

	return &page, nil
}

// People implements tmdb.TrendingClient.People.
func (c *TrendingClient) People(ctx context.Context, window tmdb.TimeWindow, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Person], error) {
	path := fmt.Sprintf("/trending/person/%s", normalizeWindow(window))

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting trending people: %w", err)
	}

	var page tmdb.Page[tmdb.Person]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing trending people response: %w", err)
	}

	return &page, nil
}
