package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// KeywordsClient implements tmdb.KeywordsClient.
type KeywordsClient struct {
	httpClient *http.Client
}

// NewKeywordsClient creates a new keywords client.
func NewKeywordsClient(httpClient *http.Client) *KeywordsClient {
	return &KeywordsClient{httpClient: httpClient}
}

// Get implements tmdb.KeywordsClient.Get.
func (c *KeywordsClient) Get(ctx context.Context, keywordID int64) (*tmdb.Keyword, error) {
	if keywordID <= 0 {
		return nil, tmdb.ErrInvalidKeywordID
	}

	path := fmt.Sprintf("/keyword/%d", keywordID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting keyword: %w", err)
	}

	var keyword tmdb.Keyword
	if err := json.Unmarshal(resp.Body, &keyword); err != nil {
		return nil, fmt.Errorf("parsing keyword response: %w", err)
	}

	return &keyword, nil
}
