package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// CollectionsClient implements tmdb.CollectionsClient.
type CollectionsClient struct {
	httpClient *http.Client
}

// NewCollectionsClient creates a new collections client.
func NewCollectionsClient(httpClient *http.Client) *CollectionsClient {
	return &CollectionsClient{httpClient: httpClient}
}

// Get implements tmdb.CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, collectionID int64, params *tmdb.QueryParams) (*tmdb.CollectionDetails, error) {
	if collectionID <= 0 {
		return nil, tmdb.ErrInvalidCollectionID
	}

	path := fmt.Sprintf("/collection/%d", collectionID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	var details tmdb.CollectionDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &details, nil
}

// Images implements tmdb.CollectionsClient.Images.
func (c *CollectionsClient) Images(ctx context.Context, collectionID int64, params *tmdb.QueryParams) (*tmdb.CollectionImages, error) {
	if collectionID <= 0 {
		return nil, tmdb.ErrInvalidCollectionID
	}

	path := fmt.Sprintf("/collection/%d/images", collectionID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting collection images: %w", err)
	}

	var images tmdb.CollectionImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing collection images response: %w", err)
	}

	return &images, nil
}

// Translations implements tmdb.CollectionsClient.Translations.
func (c *CollectionsClient) Translations(ctx context.Context, collectionID int64) (*tmdb.TranslationList[tmdb.CollectionTranslationData], error) {
	if collectionID <= 0 {
		return nil, tmdb.ErrInvalidCollectionID
	}

	path := fmt.Sprintf("/collection/%d/translations", collectionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.CollectionTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing collection translations response: %w", err)
	}

	return &translations, nil
}
