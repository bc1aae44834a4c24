package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// CreditsClient implements tmdb.CreditsClient.
type CreditsClient struct {
	httpClient *http.Client
}

// NewCreditsClient creates a new credits client.
func NewCreditsClient(httpClient *http.Client) *CreditsClient {
	return &CreditsClient{httpClient: httpClient}
}

// Get implements tmdb.CreditsClient.Get.
func (c *CreditsClient) Get(ctx context.Context, creditID string) (*tmdb.CreditDetails, error) {
	if creditID == "" {
		return nil, tmdb.ErrCreditIDRequired
	}

	path := "/credit/" + url.PathEscape(creditID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting credit: %w", err)
	}

	var details tmdb.CreditDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing credit response: %w", err)
	}

	return &details, nil
}
