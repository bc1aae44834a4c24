package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// TVClient implements tmdb.TVClient.
type TVClient struct {
	httpClient *http.Client
}

// NewTVClient creates a new TV series client.
func NewTVClient(httpClient *http.Client) *TVClient {
	return &TVClient{httpClient: httpClient}
}

// Get implements tmdb.TVClient.Get.
func (c *TVClient) Get(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.TVShowDetails, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv series: %w", err)
	}

	var details tmdb.TVShowDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing tv series response: %w", err)
	}

	return &details, nil
}

// AiringToday implements tmdb.TVClient.AiringToday.
func (c *TVClient) AiringToday(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	return c.listShows(ctx, "/tv/airing_today", params, "airing today")
}

// OnTheAir implements tmdb.TVClient.OnTheAir.
func (c *TVClient) OnTheAir(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	return c.listShows(ctx, "/tv/on_the_air", params, "on the air")
}

// Popular implements tmdb.TVClient.Popular.
func (c *TVClient) Popular(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	return c.listShows(ctx, "/tv/popular", params, "popular")
}

// TopRated implements tmdb.TVClient.TopRated.
func (c *TVClient) TopRated(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	return c.listShows(ctx, "/tv/top_rated", params, "top rated")
}

func (c *TVClient) listShows(ctx context.Context, path string, params *tmdb.QueryParams, label string) (*tmdb.Page[tmdb.TVShow], error) {
	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting %s tv series: %w", label, err)
	}

	var page tmdb.Page[tmdb.TVShow]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing %s tv series response: %w", label, err)
	}

	return &page, nil
}

// Latest implements tmdb.TVClient.Latest.
func (c *TVClient) Latest(ctx context.Context, params *tmdb.QueryParams) (*tmdb.TVShowDetails, error) {
	resp, err := c.httpClient.Get(ctx, "/tv/latest", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting latest tv series: %w", err)
	}

	var details tmdb.TVShowDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing latest tv series response: %w", err)
	}

	return &details, nil
}

// AlternativeTitles implements tmdb.TVClient.AlternativeTitles.
func (c *TVClient) AlternativeTitles(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.TVAlternativeTitles, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/alternative_titles", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv alternative titles: %w", err)
	}

	var titles tmdb.TVAlternativeTitles
	if err := json.Unmarshal(resp.Body, &titles); err != nil {
		return nil, fmt.Errorf("parsing tv alternative titles response: %w", err)
	}

	return &titles, nil
}

// ContentRatings implements tmdb.TVClient.ContentRatings.
func (c *TVClient) ContentRatings(ctx context.Context, seriesID int64) (*tmdb.TVContentRatings, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/content_ratings", seriesID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv content ratings: %w", err)
	}

	var ratings tmdb.TVContentRatings
	if err := json.Unmarshal(resp.Body, &ratings); err != nil {
		return nil, fmt.Errorf("parsing tv content ratings response: %w", err)
	}

	return &ratings, nil
}

// Credits implements tmdb.TVClient.Credits.
func (c *TVClient) Credits(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.Credits, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/credits", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv credits: %w", err)
	}

	var credits tmdb.Credits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing tv credits response: %w", err)
	}

	return &credits, nil
}

// AggregateCredits implements tmdb.TVClient.AggregateCredits.
func (c *TVClient) AggregateCredits(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.AggregateCredits, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/aggregate_credits", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv aggregate credits: %w", err)
	}

	var credits tmdb.AggregateCredits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing tv aggregate credits response: %w", err)
	}

	return &credits, nil
}

// ExternalIDs implements tmdb.TVClient.ExternalIDs.
func (c *TVClient) ExternalIDs(ctx context.Context, seriesID int64) (*tmdb.ExternalIDs, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/external_ids", seriesID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv external ids: %w", err)
	}

	var ids tmdb.ExternalIDs
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("parsing tv external ids response: %w", err)
	}

	return &ids, nil
}

// Images implements tmdb.TVClient.Images.
func (c *TVClient) Images(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.TVImages, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/images", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv images: %w", err)
	}

	var images tmdb.TVImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing tv images response: %w", err)
	}

	return &images, nil
}

// Keywords implements tmdb.TVClient.Keywords.
func (c *TVClient) Keywords(ctx context.Context, seriesID int64) (*tmdb.TVKeywords, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/keywords", seriesID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv keywords: %w", err)
	}

	var keywords tmdb.TVKeywords
	if err := json.Unmarshal(resp.Body, &keywords); err != nil {
		return nil, fmt.Errorf("parsing tv keywords response: %w", err)
	}

	return &keywords, nil
}

// Recommendations implements tmdb.TVClient.Recommendations.
func (c *TVClient) Recommendations(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	return c.listShows(ctx, fmt.Sprintf("/tv/%d/recommendations", seriesID), params, "recommended")
}

// Reviews implements tmdb.TVClient.Reviews.
func (c *TVClient) Reviews(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Review], error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/reviews", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv reviews: %w", err)
	}

	var page tmdb.Page[tmdb.Review]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing tv reviews response: %w", err)
	}

	return &page, nil
}

// Similar implements tmdb.TVClient.Similar.
func (c *TVClient) Similar(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	return c.listShows(ctx, fmt.Sprintf("/tv/%d/similar", seriesID), params, "similar")
}

// Translations implements tmdb.TVClient.Translations.
func (c *TVClient) Translations(ctx context.Context, seriesID int64) (*tmdb.TranslationList[tmdb.TVTranslationData], error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/translations", seriesID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.TVTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing tv translations response: %w", err)
	}

	return &translations, nil
}

// Videos implements tmdb.TVClient.Videos.
func (c *TVClient) Videos(ctx context.Context, seriesID int64, params *tmdb.QueryParams) (*tmdb.VideoList, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/videos", seriesID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting tv videos: %w", err)
	}

	var videos tmdb.VideoList
	if err := json.Unmarshal(resp.Body, &videos); err != nil {
		return nil, fmt.Errorf("parsing tv videos response: %w", err)
	}

	return &videos, nil
}

// WatchProviders implements tmdb.TVClient.WatchProviders.
func (c *TVClient) WatchProviders(ctx context.Context, seriesID int64) (*tmdb.WatchProviderResults, error) {
	if seriesID <= 0 {
		return nil, tmdb.ErrInvalidTVShowID
	}

	path := fmt.Sprintf("/tv/%d/watch/providers", seriesID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tv watch providers: %w", err)
	}

	var providers tmdb.WatchProviderResults
	if err := json.Unmarshal(resp.Body, &providers); err != nil {
		return nil, fmt.Errorf("parsing tv watch providers response: %w", err)
	}

	return &providers, nil
}
