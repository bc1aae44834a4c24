package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// ChangesClient implements tmdb.ChangesClient.
type ChangesClient struct {
	httpClient *http.Client
}

// NewChangesClient creates a new changes client.
func NewChangesClient(httpClient *http.Client) *ChangesClient {
	return &ChangesClient{httpClient: httpClient}
}

// Movies implements tmdb.ChangesClient.Movies.
func (c *ChangesClient) Movies(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.ChangedEntry], error) {
	return c.list(ctx, "/movie/changes", params)
}

// TV implements tmdb.ChangesClient.TV.
func (c *ChangesClient) TV(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.ChangedEntry], error) {
	return c.list(ctx, "/tv/changes", params)
}

// People implements tmdb.ChangesClient.People.
func (c *ChangesClient) People(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.ChangedEntry], error) {
	return c.list(ctx, "/person/changes", params)
}

func (c *ChangesClient) list(ctx context.Context, path string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.ChangedEntry], error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting changes: %w", err)
	}

	var page tmdb.Page[tmdb.ChangedEntry]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing changes response: %w", err)
	}

	return &page, nil
}
