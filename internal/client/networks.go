package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// NetworksClient implements tmdb.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{httpClient: httpClient}
}

// Get implements tmdb.NetworksClient.Get.
func (c *NetworksClient) Get(ctx context.Context, networkID int64) (*tmdb.NetworkDetails, error) {
	if networkID <= 0 {
		return nil, tmdb.ErrInvalidNetworkID
	}

	path := fmt.Sprintf("/network/%d", networkID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network: %w", err)
	}

	var details tmdb.NetworkDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing network response: %w", err)
	}

	return &details, nil
}

// AlternativeNames implements tmdb.NetworksClient.AlternativeNames.
func (c *NetworksClient) AlternativeNames(ctx context.Context, networkID int64) (*tmdb.NetworkAlternativeNames, error) {
	if networkID <= 0 {
		return nil, tmdb.ErrInvalidNetworkID
	}

	path := fmt.Sprintf("/network/%d/alternative_names", networkID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network alternative names: %w", err)
	}

	var names tmdb.NetworkAlternativeNames
	if err := json.Unmarshal(resp.Body, &names); err != nil {
		return nil, fmt.Errorf("parsing network alternative names response: %w", err)
	}

	return &names, nil
}

// Images implements tmdb.NetworksClient.Images.
func (c *NetworksClient) Images(ctx context.Context, networkID int64) (*tmdb.NetworkImages, error) {
	if networkID <= 0 {
		return nil, tmdb.ErrInvalidNetworkID
	}

	path := fmt.Sprintf("/network/%d/images", networkID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting network images: %w", err)
	}

	var images tmdb.NetworkImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing network images response: %w", err)
	}

	return &images, nil
}
