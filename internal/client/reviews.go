package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// ReviewsClient implements tmdb.ReviewsClient.
type ReviewsClient struct {
	httpClient *http.Client
}

// NewReviewsClient creates a new reviews client.
func NewReviewsClient(httpClient *http.Client) *ReviewsClient {
	return &ReviewsClient{httpClient: httpClient}
}

// Get implements tmdb.ReviewsClient.Get.
func (c *ReviewsClient) Get(ctx context.Context, reviewID string) (*tmdb.ReviewDetails, error) {
	if reviewID == "" {
		return nil, tmdb.ErrReviewIDRequired
	}

	path := "/review/" + url.PathEscape(reviewID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting review: %w", err)
	}

	var details tmdb.ReviewDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing review response: %w", err)
	}

	return &details, nil
}
