package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// CertificationsClient implements tmdb.CertificationsClient.
type CertificationsClient struct {
	httpClient *http.Client
}

// NewCertificationsClient creates a new certifications client.
func NewCertificationsClient(httpClient *http.Client) *CertificationsClient {
	return &CertificationsClient{httpClient: httpClient}
}

// Movie implements tmdb.CertificationsClient.Movie.
func (c *CertificationsClient) Movie(ctx context.Context) (*tmdb.CertificationList, error) {
	return c.list(ctx, "/certification/movie/list")
}

// TV implements tmdb.CertificationsClient.TV.
func (c *CertificationsClient) TV(ctx context.Context) (*tmdb.CertificationList, error) {
	return c.list(ctx, "/certification/tv/list")
}

func (c *CertificationsClient) list(ctx context.Context, path string) (*tmdb.CertificationList, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting certifications: %w", err)
	}

	var certifications tmdb.CertificationList
	if err := json.Unmarshal(resp.Body, &certifications); err != nil {
		return nil, fmt.Errorf("parsing certifications response: %w", err)
	}

	return &certifications, nil
}
