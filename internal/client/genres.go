package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// GenresClient implements tmdb.GenresClient.
type GenresClient struct {
	httpClient *http.Client
}

// NewGenresClient creates a new genres client.
func NewGenresClient(httpClient *http.Client) *GenresClient {
	return &GenresClient{httpClient: httpClient}
}

// Movie implements tmdb.GenresClient.Movie.
func (c *GenresClient) Movie(ctx context.Context, params *tmdb.QueryParams) (*tmdb.GenreList, error) {
	return c.list(ctx, "/genre/movie/list", params)
}

// TV implements tmdb.GenresClient.TV.
func (c *GenresClient) TV(ctx context.Context, params *tmdb.QueryParams) (*tmdb.GenreList, error) {
	return c.list(ctx, "/genre/tv/list", params)
}

func (c *GenresClient) list(ctx context.Context, path string, params *tmdb.QueryParams) (*tmdb.GenreList, error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting genres: %w", err)
	}

	var genres tmdb.GenreList
	if err := json.Unmarshal(resp.Body, &genres); err != nil {
		return nil, fmt.Errorf("parsing genres response: %w", err)
	}

	return &genres, nil
}
