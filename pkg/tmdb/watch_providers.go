package tmdb

import "context"

// WatchProvidersClient provides access to the watch provider endpoints.
type WatchProvidersClient interface {
	// Regions returns the regions watch provider data is available for.
	Regions(ctx context.Context, params *QueryParams) (*WatchProviderRegions, error)
	// Movie returns the watch providers serving movies.
	Movie(ctx context.Context, params *QueryParams) (*WatchProviderList, error)
	// TV returns the watch providers serving TV series.
	TV(ctx context.Context, params *QueryParams) (*WatchProviderList, error)
}

// WatchProviderRegion is a single region entry.
type WatchProviderRegion struct {
	ISO31661    string `json:"iso_3166_1"   yaml:"iso_3166_1"`
	EnglishName string `json:"english_name" yaml:"english_name"`
	NativeName  string `json:"native_name"  yaml:"native_name"`
}

// WatchProviderRegions is the envelope for the regions endpoint.
type WatchProviderRegions struct {
	Results []WatchProviderRegion `json:"results" yaml:"results"`
}

// WatchProvider describes a streaming provider.
type WatchProvider struct {
	DisplayPriority int     `json:"display_priority" yaml:"display_priority"`
	LogoPath        *string `json:"logo_path"        yaml:"logo_path"`
	ProviderID      int64   `json:"provider_id"      yaml:"provider_id"`
	ProviderName    string  `json:"provider_name"    yaml:"provider_name"`
}

// WatchProviderList is the envelope for the provider list endpoints.
type WatchProviderList struct {
	Results []WatchProvider `json:"results" yaml:"results"`
}

// CountryWatchProviders groups providers by monetization within one
// country. Link attributes the data to JustWatch as the API terms
// require.
type CountryWatchProviders struct {
	Link     string          `json:"link"     yaml:"link"`
	Flatrate []WatchProvider `json:"flatrate" yaml:"flatrate"`
	Rent     []WatchProvider `json:"rent"     yaml:"rent"`
	Buy      []WatchProvider `json:"buy"      yaml:"buy"`
	Free     []WatchProvider `json:"free"     yaml:"free"`
	Ads      []WatchProvider `json:"ads"      yaml:"ads"`
}

// WatchProviderResults maps ISO 3166-1 country codes to the providers
// carrying a title there.
type WatchProviderResults struct {
	ID      int64                            `json:"id"      yaml:"id"`
	Results map[string]CountryWatchProviders `json:"results" yaml:"results"`
}
