package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// TVSeasonsClient implements tmdb.TVSeasonsClient.
type TVSeasonsClient struct {
	httpClient *http.Client
}

// NewTVSeasonsClient creates a new TV seasons client.
func NewTVSeasonsClient(httpClient *http.Client) *TVSeasonsClient {
	return &TVSeasonsClient{httpClient: httpClient}
}

// Season number 0 is valid: it holds specials.
func validateSeasonPath(seriesID int64, seasonNumber int) error {
	if seriesID <= 0 {
		return tmdb.ErrInvalidTVShowID
	}

	if seasonNumber < 0 {
		return tmdb.ErrInvalidSeasonNumber
	}

	return nil
}

// Get implements tmdb.TVSeasonsClient.Get.
func (c *TVSeasonsClient) Get(ctx context.Context, seriesID int64, seasonNumber int, params *tmdb.QueryParams) (*tmdb.TVSeasonDetails, error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv season: %w", err)
	}

	var details tmdb.TVSeasonDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing tv season response: %w", err)
	}

	return &details, nil
}

// Credits implements tmdb.TVSeasonsClient.Credits.
func (c *TVSeasonsClient) Credits(ctx context.Context, seriesID int64, seasonNumber int, params *tmdb.QueryParams) (*tmdb.Credits, error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/credits", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv season credits: %w", err)
	}

	var credits tmdb.Credits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing tv season credits response: %w", err)
	}

	return &credits, nil
}

// ExternalIDs implements tmdb.TVSeasonsClient.ExternalIDs.
func (c *TVSeasonsClient) ExternalIDs(ctx context.Context, seriesID int64, seasonNumber int) (*tmdb.ExternalIDs, error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/external_ids", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv season external ids: %w", err)
	}

	var ids tmdb.ExternalIDs
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("parsing tv season external ids response: %w", err)
	}

	return &ids, nil
}

// Images implements tmdb.TVSeasonsClient.Images.
func (c *TVSeasonsClient) Images(ctx context.Context, seriesID int64, seasonNumber int, params *tmdb.QueryParams) (*tmdb.TVSeasonImages, error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/images", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv season images: %w", err)
	}

	var images tmdb.TVSeasonImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing tv season images response: %w", err)
	}

	return &images, nil
}

// Translations implements tmdb.TVSeasonsClient.Translations.
func (c *TVSeasonsClient) Translations(ctx context.Context, seriesID int64, seasonNumber int) (*tmdb.TranslationList[tmdb.TVSeasonTranslationData], error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/translations", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv season translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.TVSeasonTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing tv season translations response: %w", err)
	}

	return &translations, nil
}

// Videos implements tmdb.TVSeasonsClient.Videos.
func (c *TVSeasonsClient) Videos(ctx context.Context, seriesID int64, seasonNumber int, params *tmdb.QueryParams) (*tmdb.VideoList, error) {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/videos", seriesID, seasonNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv season videos: %w", err)
	}

	var videos tmdb.VideoList
	if err := json.Unmarshal(resp.Body, &videos); err != nil {
		return nil, fmt.Errorf("parsing tv season videos response: %w", err)
	}

	return &videos, nil
}
