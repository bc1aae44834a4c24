package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// MoviesClient implements tmdb.MoviesClient.
type MoviesClient struct {
	httpClient *http.Client
}

// NewMoviesClient creates a new movies client.
func NewMoviesClient(httpClient *http.Client) *MoviesClient {
	return &MoviesClient{httpClient: httpClient}
}

// Get implements tmdb.MoviesClient.Get.
func (c *MoviesClient) Get(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.MovieDetails, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie: %w", err)
	}

	var details tmdb.MovieDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing movie response: %w", err)
	}

	return &details, nil
}

// AlternativeTitles implements tmdb.MoviesClient.AlternativeTitles.
func (c *MoviesClient) AlternativeTitles(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.MovieAlternativeTitles, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/alternative_titles", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie alternative titles: %w", err)
	}

	var titles tmdb.MovieAlternativeTitles
	if err := json.Unmarshal(resp.Body, &titles); err != nil {
		return nil, fmt.Errorf("parsing movie alternative titles response: %w", err)
	}

	return &titles, nil
}

// Credits implements tmdb.MoviesClient.Credits.
func (c *MoviesClient) Credits(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.Credits, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/credits", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie credits: %w", err)
	}

	var credits tmdb.Credits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing movie credits response: %w", err)
	}

	return &credits, nil
}

// ExternalIDs implements tmdb.MoviesClient.ExternalIDs.
func (c *MoviesClient) ExternalIDs(ctx context.Context, movieID int64) (*tmdb.ExternalIDs, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/external_ids", movieID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movie external ids: %w", err)
	}

	var ids tmdb.ExternalIDs
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("parsing movie external ids response: %w", err)
	}

	return &ids, nil
}

// Images implements tmdb.MoviesClient.Images.
func (c *MoviesClient) Images(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.MovieImages, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/images", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie images: %w", err)
	}

	var images tmdb.MovieImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing movie images response: %w", err)
	}

	return &images, nil
}

// Keywords implements tmdb.MoviesClient.Keywords.
func (c *MoviesClient) Keywords(ctx context.Context, movieID int64) (*tmdb.MovieKeywords, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/keywords", movieID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movie keywords: %w", err)
	}

	var keywords tmdb.MovieKeywords
	if err := json.Unmarshal(resp.Body, &keywords); err != nil {
		return nil, fmt.Errorf("parsing movie keywords response: %w", err)
	}

	return &keywords, nil
}

// Latest implements tmdb.MoviesClient.Latest.
func (c *MoviesClient) Latest(ctx context.Context, params *tmdb.QueryParams) (*tmdb.MovieDetails, error) {
	resp, err := c.httpClient.Get(ctx, "/movie/latest", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting latest movie: %w", err)
	}

	var details tmdb.MovieDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing latest movie response: %w", err)
	}

	return &details, nil
}

// Lists implements tmdb.MoviesClient.Lists.
func (c *MoviesClient) Lists(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.MovieList], error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/lists", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie lists: %w", err)
	}

	var page tmdb.Page[tmdb.MovieList]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing movie lists response: %w", err)
	}

	return &page, nil
}

// NowPlaying implements tmdb.MoviesClient.NowPlaying.
func (c *MoviesClient) NowPlaying(ctx context.Context, params *tmdb.QueryParams) (*tmdb.DatedPage[tmdb.Movie], error) {
	resp, err := c.httpClient.Get(ctx, "/movie/now_playing", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting now playing movies: %w", err)
	}

	var page tmdb.DatedPage[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing now playing movies response: %w", err)
	}

	return &page, nil
}

// Popular implements tmdb.MoviesClient.Popular.
func (c *MoviesClient) Popular(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	resp, err := c.httpClient.Get(ctx, "/movie/popular", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting popular movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing popular movies response: %w", err)
	}

	return &page, nil
}

// Recommendations implements tmdb.MoviesClient.Recommendations.
func (c *MoviesClient) Recommendations(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/recommendations", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie recommendations: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing movie recommendations response: %w", err)
	}

	return &page, nil
}

// ReleaseDates implements tmdb.MoviesClient.ReleaseDates.
func (c *MoviesClient) ReleaseDates(ctx context.Context, movieID int64) (*tmdb.MovieReleaseDates, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/release_dates", movieID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movie release dates: %w", err)
	}

	var dates tmdb.MovieReleaseDates
	if err := json.Unmarshal(resp.Body, &dates); err != nil {
		return nil, fmt.Errorf("parsing movie release dates response: %w", err)
	}

	return &dates, nil
}

// Reviews implements tmdb.MoviesClient.Reviews.
func (c *MoviesClient) Reviews(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Review], error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/reviews", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie reviews: %w", err)
	}

	var page tmdb.Page[tmdb.Review]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing movie reviews response: %w", err)
	}

	return &page, nil
}

// Similar implements tmdb.MoviesClient.Similar.
func (c *MoviesClient) Similar(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/similar", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting similar movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing similar movies response: %w", err)
	}

	return &page, nil
}

// TopRated implements tmdb.MoviesClient.TopRated.
func (c *MoviesClient) TopRated(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	resp, err := c.httpClient.Get(ctx, "/movie/top_rated", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting top rated movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing top rated movies response: %w", err)
	}

	return &page, nil
}

// Translations implements tmdb.MoviesClient.Translations.
func (c *MoviesClient) Translations(ctx context.Context, movieID int64) (*tmdb.TranslationList[tmdb.MovieTranslationData], error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/translations", movieID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movie translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.MovieTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing movie translations response: %w", err)
	}

	return &translations, nil
}

// Upcoming implements tmdb.MoviesClient.Upcoming.
func (c *MoviesClient) Upcoming(ctx context.Context, params *tmdb.QueryParams) (*tmdb.DatedPage[tmdb.Movie], error) {
	resp, err := c.httpClient.Get(ctx, "/movie/upcoming", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting upcoming movies: %w", err)
	}

	var page tmdb.DatedPage[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing upcoming movies response: %w", err)
	}

	return &page, nil
}

// Videos implements tmdb.MoviesClient.Videos.
func (c *MoviesClient) Videos(ctx context.Context, movieID int64, params *tmdb.QueryParams) (*tmdb.VideoList, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/videos", movieID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting movie videos: %w", err)
	}

	var videos tmdb.VideoList
	if err := json.Unmarshal(resp.Body, &videos); err != nil {
		return nil, fmt.Errorf("parsing movie videos response: %w", err)
	}

	return &videos, nil
}

// WatchProviders implements tmdb.MoviesClient.WatchProviders.
func (c *MoviesClient) WatchProviders(ctx context.Context, movieID int64) (*tmdb.WatchProviderResults, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidMovieID
	}

	path := fmt.Sprintf("/movie/%d/watch/providers", movieID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movie watch providers: %w", err)
	}

	var providers tmdb.WatchProviderResults
	if err := json.Unmarshal(resp.Body, &providers); err != nil {
		return nil, fmt.Errorf("parsing movie watch providers response: %w", err)
	}

	return &providers, nil
}
