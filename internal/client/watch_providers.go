package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// WatchProvidersClient implements tmdb.WatchProvidersClient.
type WatchProvidersClient struct {
	httpClient *http.Client
}

// NewWatchProvidersClient creates a new watch providers client.
func NewWatchProvidersClient(httpClient *http.Client) *WatchProvidersClient {
	return &WatchProvidersClient{httpClient: httpClient}
}

// Regions implements tmdb.WatchProvidersClient.Regions.
func (c *WatchProvidersClient) Regions(ctx context.Context, params *tmdb.QueryParams) (*tmdb.WatchProviderRegions, error) {
	resp, err := c.httpClient.Get(ctx, "/watch/providers/regions", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting watch provider regions: %w", err)
	}

	var regions tmdb.WatchProviderRegions
	if err := json.Unmarshal(resp.Body, &regions); err != nil {
		return nil, fmt.Errorf("parsing watch provider regions response: %w", err)
	}

	return &regions, nil
}

// Movie implements tmdb.WatchProvidersClient.Movie.
func (c *WatchProvidersClient) Movie(ctx context.Context, params *tmdb.QueryParams) (*tmdb.WatchProviderList, error) {
	return c.list(ctx, "/watch/providers/movie", params)
}

// TV implements tmdb.WatchProvidersClient.TV.
func (c *WatchProvidersClient) TV(ctx context.Context, params *tmdb.QueryParams) (*tmdb.WatchProviderList, error) {
	return c.list(ctx, "/watch/providers/tv", params)
}

func (c *WatchProvidersClient) list(ctx context.Context, path string, params *tmdb.QueryParams) (*tmdb.WatchProviderList, error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting watch providers: %w", err)
	}

	var providers tmdb.WatchProviderList
	if err := json.Unmarshal(resp.Body, &providers); err != nil {
		return nil, fmt.Errorf("parsing watch providers response: %w", err)
	}

	return &providers, nil
}
