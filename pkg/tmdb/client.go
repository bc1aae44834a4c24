package tmdb

import (
	"context"
	"time"
)

// CatalogClients provides access to the primary media resource clients.
type CatalogClients interface {
	Movies() MoviesClient
	TV() TVClient
	TVSeasons() TVSeasonsClient
	TVEpisodes() TVEpisodesClient
	Collections() CollectionsClient
}

// DiscoveryClients provides access to the search and discovery clients.
type DiscoveryClients interface {
	Search() SearchClient
	Discover() DiscoverClient
	Trending() TrendingClient
	Find() FindClient
}

// PeopleCompanyClients provides access to person and company resource
// clients.
type PeopleCompanyClients interface {
	People() PeopleClient
	Companies() CompaniesClient
	Networks() NetworksClient
	Credits() CreditsClient
}

// ReferenceClients provides access to reference-data resource clients.
type ReferenceClients interface {
	Genres() GenresClient
	Keywords() KeywordsClient
	Reviews() ReviewsClient
	Certifications() CertificationsClient
	WatchProviders() WatchProvidersClient
	Changes() ChangesClient
}

// ConfigurationClient provides access to the API configuration endpoints.
type ConfigurationClient interface {
	GetConfiguration(ctx context.Context) (*Configuration, error)
	GetCountries(ctx context.Context, params *QueryParams) ([]Country, error)
	GetJobs(ctx context.Context) ([]DepartmentJobs, error)
	GetLanguages(ctx context.Context) ([]Language, error)
	GetPrimaryTranslations(ctx context.Context) ([]string, error)
	GetTimezones(ctx context.Context) ([]CountryTimezones, error)
}

// Client is the full TMDB API client surface.
type Client interface {
	CatalogClients
	DiscoveryClients
	PeopleCompanyClients
	ReferenceClients
	ConfigurationClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tmdb.Client.
//
// # Authentication
//
// Provide exactly one of:
//  1. APIKey: a v3 API key, sent as the api_key query parameter on every
//     request.
//  2. AccessToken: a v4 read access token, sent as a Bearer token in the
//     Authorization header.
//
// When both are set, AccessToken wins; the API treats the header as
// authoritative.
//
// # Timeouts, retries
//
// Per-request timeouts are controlled via the context passed to client
// methods. Transport retries (429, 5xx, connection errors) can be tuned
// via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIKey is a TMDB v3 API key.
	APIKey string
	// AccessToken is a TMDB v4 read access token.
	AccessToken string

	// BaseURL overrides the API base URL; defaults to
	// https://api.themoviedb.org/3. Mostly useful for tests.
	BaseURL string

	// HTTPTimeout is the transport-level request timeout; most callers
	// should rely on context deadlines instead.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport retries. If 0, a
	// default is used.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
