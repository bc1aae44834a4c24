package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// FindClient implements tmdb.FindClient.
type FindClient struct {
	httpClient *http.Client
}

// NewFindClient creates a new find client.
func NewFindClient(httpClient *http.Client) *FindClient {
	return &FindClient{httpClient: httpClient}
}

// ByExternalID implements tmdb.FindClient.ByExternalID.
func (c *FindClient) ByExternalID(ctx context.Context, externalID, source string, params *tmdb.QueryParams) (*tmdb.FindResults, error) {
	if externalID == "" {
		return nil, tmdb.ErrExternalIDRequired
	}

	if source == "" {
		return nil, tmdb.ErrExternalSourceRequired
	}

	values := params.ToValues()
	if values == nil {
		values = url.Values{}
	}

	values.Set("external_source", source)

	path := "/find/" + url.PathEscape(externalID)

	resp, err := c.httpClient.Get(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("finding by external id: %w", err)
	}

	var results tmdb.FindResults
	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return nil, fmt.Errorf("parsing find response: %w", err)
	}

	return &results, nil
}
