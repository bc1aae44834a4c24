package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// TVEpisodesClient implements tmdb.TVEpisodesClient.
type TVEpisodesClient struct {
	httpClient *http.Client
}

// NewTVEpisodesClient creates a new TV episodes client.
func NewTVEpisodesClient(httpClient *http.Client) *TVEpisodesClient {
	return &TVEpisodesClient{httpClient: httpClient}
}

func validateEpisodePath(seriesID int64, seasonNumber, episodeNumber int) error {
	if err := validateSeasonPath(seriesID, seasonNumber); err != nil {
		return err
	}

	if episodeNumber <= 0 {
		return tmdb.ErrInvalidEpisodeNumber
	}

	return nil
}

// Get implements tmdb.TVEpisodesClient.Get.
func (c *TVEpisodesClient) Get(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *tmdb.QueryParams) (*tmdb.TVEpisodeDetails, error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv episode: %w", err)
	}

	var details tmdb.TVEpisodeDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing tv episode response: %w", err)
	}

	return &details, nil
}

// Credits implements tmdb.TVEpisodesClient.Credits.
func (c *TVEpisodesClient) Credits(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *tmdb.QueryParams) (*tmdb.TVEpisodeCredits, error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/credits", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv episode credits: %w", err)
	}

	var credits tmdb.TVEpisodeCredits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing tv episode credits response: %w", err)
	}

	return &credits, nil
}

// ExternalIDs implements tmdb.TVEpisodesClient.ExternalIDs.
func (c *TVEpisodesClient) ExternalIDs(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int) (*tmdb.ExternalIDs, error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/external_ids", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv episode external ids: %w", err)
	}

	var ids tmdb.ExternalIDs
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("parsing tv episode external ids response: %w", err)
	}

	return &ids, nil
}

// Images implements tmdb.TVEpisodesClient.Images.
func (c *TVEpisodesClient) Images(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *tmdb.QueryParams) (*tmdb.TVEpisodeImages, error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/images", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv episode images: %w", err)
	}

	var images tmdb.TVEpisodeImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing tv episode images response: %w", err)
	}

	return &images, nil
}

// Translations implements tmdb.TVEpisodesClient.Translations.
func (c *TVEpisodesClient) Translations(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int) (*tmdb.TranslationList[tmdb.TVEpisodeTranslationData], error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/translations", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv episode translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.TVEpisodeTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing tv episode translations response: %w", err)
	}

	return &translations, nil
}

// Videos implements tmdb.TVEpisodesClient.Videos.
func (c *TVEpisodesClient) Videos(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *tmdb.QueryParams) (*tmdb.VideoList, error) {
	if err := validateEpisodePath(seriesID, seasonNumber, episodeNumber); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d/videos", seriesID, seasonNumber, episodeNumber)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv episode videos: %w", err)
	}

	var videos tmdb.VideoList
	if err := json.Unmarshal(resp.Body, &videos); err != nil {
		return nil, fmt.Errorf("parsing tv episode videos response: %w", err)
	}

	return &videos, nil
}
