// Package client implements the tmdb.Client interface over the HTTP
// transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/auth"
	"github.com/moviekit/tmdb-client/internal/constants"
	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// Client implements the tmdb.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     tmdb.Logger

	// Resource clients
	movies         tmdb.MoviesClient
	tv             tmdb.TVClient
	tvSeasons      tmdb.TVSeasonsClient
	tvEpisodes     tmdb.TVEpisodesClient
	search         tmdb.SearchClient
	discover       tmdb.DiscoverClient
	trending       tmdb.TrendingClient
	find           tmdb.FindClient
	people         tmdb.PeopleClient
	companies      tmdb.CompaniesClient
	networks       tmdb.NetworksClient
	collections    tmdb.CollectionsClient
	genres         tmdb.GenresClient
	keywords       tmdb.KeywordsClient
	reviews        tmdb.ReviewsClient
	credits        tmdb.CreditsClient
	certifications tmdb.CertificationsClient
	watchProviders tmdb.WatchProvidersClient
	changes        tmdb.ChangesClient
}

// createCredentials selects the credential type from config. The access
// token takes precedence over the API key.
func createCredentials(config *tmdb.Config) auth.Credentials {
	if config.AccessToken != "" {
		return auth.NewBearerToken(config.AccessToken)
	}

	if config.APIKey != "" {
		return auth.NewAPIKey(config.APIKey)
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *tmdb.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from config. The base URL must already
// be normalized by the caller.
func New(config *tmdb.Config) (*Client, error) {
	if config == nil {
		return nil, tmdb.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, tmdb.ErrBaseURLRequired
	}

	credentials := createCredentials(config)
	if credentials == nil {
		return nil, tmdb.ErrCredentialsRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, credentials, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Resource client accessors

// Movies implements tmdb.Client.Movies.
func (c *Client) Movies() tmdb.MoviesClient {
	return c.movies
}

// TV implements tmdb.Client.TV.
func (c *Client) TV() tmdb.TVClient {
	return c.tv
}

// TVSeasons implements tmdb.Client.TVSeasons.
func (c *Client) TVSeasons() tmdb.TVSeasonsClient {
	return c.tvSeasons
}

// TVEpisodes implements tmdb.Client.TVEpisodes.
func (c *Client) TVEpisodes() tmdb.TVEpisodesClient {
	return c.tvEpisodes
}

// Search implements tmdb.Client.Search.
func (c *Client) Search() tmdb.SearchClient {
	return c.search
}

// Discover implements tmdb.Client.Discover.
func (c *Client) Discover() tmdb.DiscoverClient {
	return c.discover
}

// Trending implements tmdb.Client.Trending.
func (c *Client) Trending() tmdb.TrendingClient {
	return c.trending
}

// Find implements tmdb.Client.Find.
func (c *Client) Find() tmdb.FindClient {
	return c.find
}

// People implements tmdb.Client.People.
func (c *Client) People() tmdb.PeopleClient {
	return c.people
}

// Companies implements tmdb.Client.Companies.
func (c *Client) Companies() tmdb.CompaniesClient {
	return c.companies
}

// Networks implements tmdb.Client.Networks.
func (c *Client) Networks() tmdb.NetworksClient {
	return c.networks
}

// Collections implements tmdb.Client.Collections.
func (c *Client) Collections() tmdb.CollectionsClient {
	return c.collections
}

// Genres implements tmdb.Client.Genres.
func (c *Client) Genres() tmdb.GenresClient {
	return c.genres
}

// Keywords implements tmdb.Client.Keywords.
func (c *Client) Keywords() tmdb.KeywordsClient {
	return c.keywords
}

// Reviews implements tmdb.Client.Reviews.
func (c *Client) Reviews() tmdb.ReviewsClient {
	return c.reviews
}

// Credits implements tmdb.Client.Credits.
func (c *Client) Credits() tmdb.CreditsClient {
	return c.credits
}

// Certifications implements tmdb.Client.Certifications.
func (c *Client) Certifications() tmdb.CertificationsClient {
	return c.certifications
}

// WatchProviders implements tmdb.Client.WatchProviders.
func (c *Client) WatchProviders() tmdb.WatchProvidersClient {
	return c.watchProviders
}

// Changes implements tmdb.Client.Changes.
func (c *Client) Changes() tmdb.ChangesClient {
	return c.changes
}

// Configuration endpoints live on the client itself because they have
// no resource identifier.

// GetConfiguration implements tmdb.Client.GetConfiguration.
func (c *Client) GetConfiguration(ctx context.Context) (*tmdb.Configuration, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration", nil)
	if err != nil {
		return nil, fmt.Errorf("getting configuration: %w", err)
	}

	var config tmdb.Configuration
	if err := json.Unmarshal(resp.Body, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration response: %w", err)
	}

	return &config, nil
}

// GetCountries implements tmdb.Client.GetCountries.
func (c *Client) GetCountries(ctx context.Context, params *tmdb.QueryParams) ([]tmdb.Country, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration/countries", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting countries: %w", err)
	}

	var countries []tmdb.Country
	if err := json.Unmarshal(resp.Body, &countries); err != nil {
		return nil, fmt.Errorf("parsing countries response: %w", err)
	}

	return countries, nil
}

// GetJobs implements tmdb.Client.GetJobs.
func (c *Client) GetJobs(ctx context.Context) ([]tmdb.DepartmentJobs, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("getting jobs: %w", err)
	}

	var jobs []tmdb.DepartmentJobs
	if err := json.Unmarshal(resp.Body, &jobs); err != nil {
		return nil, fmt.Errorf("parsing jobs response: %w", err)
	}

	return jobs, nil
}

// GetLanguages implements tmdb.Client.GetLanguages.
func (c *Client) GetLanguages(ctx context.Context) ([]tmdb.Language, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration/languages", nil)
	if err != nil {
		return nil, fmt.Errorf("getting languages: %w", err)
	}

	var languages []tmdb.Language
	if err := json.Unmarshal(resp.Body, &languages); err != nil {
		return nil, fmt.Errorf("parsing languages response: %w", err)
	}

	return languages, nil
}

// GetPrimaryTranslations implements tmdb.Client.GetPrimaryTranslations.
func (c *Client) GetPrimaryTranslations(ctx context.Context) ([]string, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration/primary_translations", nil)
	if err != nil {
		return nil, fmt.Errorf("getting primary translations: %w", err)
	}

	var translations []string
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing primary translations response: %w", err)
	}

	return translations, nil
}

// GetTimezones implements tmdb.Client.GetTimezones.
func (c *Client) GetTimezones(ctx context.Context) ([]tmdb.CountryTimezones, error) {
	resp, err := c.httpClient.Get(ctx, "/configuration/timezones", nil)
	if err != nil {
		return nil, fmt.Errorf("getting timezones: %w", err)
	}

	var timezones []tmdb.CountryTimezones
	if err := json.Unmarshal(resp.Body, &timezones); err != nil {
		return nil, fmt.Errorf("parsing timezones response: %w", err)
	}

	return timezones, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.movies = NewMoviesClient(c.httpClient)
	c.tv = NewTVClient(c.httpClient)
	c.tvSeasons = NewTVSeasonsClient(c.httpClient)
	c.tvEpisodes = NewTVEpisodesClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
	c.discover = NewDiscoverClient(c.httpClient)
	c.trending = NewTrendingClient(c.httpClient)
	c.find = NewFindClient(c.httpClient)
	c.people = NewPeopleClient(c.httpClient)
	c.companies = NewCompaniesClient(c.httpClient)
	c.networks = NewNetworksClient(c.httpClient)
	c.collections = NewCollectionsClient(c.httpClient)
	c.genres = NewGenresClient(c.httpClient)
	c.keywords = NewKeywordsClient(c.httpClient)
	c.reviews = NewReviewsClient(c.httpClient)
	c.credits = NewCreditsClient(c.httpClient)
	c.certifications = NewCertificationsClient(c.httpClient)
	c.watchProviders = NewWatchProvidersClient(c.httpClient)
	c.changes = NewChangesClient(c.httpClient)
}

// loggerAdapter adapts tmdb.Logger to http.Logger.
type loggerAdapter struct {
	logger tmdb.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
