package tmdb

import "context"

// NetworksClient provides access to the TV network endpoints.
type NetworksClient interface {
	// Get returns the details of a network.
	Get(ctx context.Context, networkID int64) (*NetworkDetails, error)
	// AlternativeNames returns the alternative names of a network.
	AlternativeNames(ctx context.Context, networkID int64) (*NetworkAlternativeNames, error)
	// Images returns the logos of a network.
	Images(ctx context.Context, networkID int64) (*NetworkImages, error)
}

// Network represents a TV network as embedded in series details.
type Network struct {
	ID            int64   `json:"id"             yaml:"id"`
	LogoPath      *string `json:"logo_path"      yaml:"logo_path"`
	Name          string  `json:"name"           yaml:"name"`
	OriginCountry string  `json:"origin_country" yaml:"origin_country"`
}

// NetworkDetails represents the full network payload.
type NetworkDetails struct {
	Headquarters  string  `json:"headquarters"   yaml:"headquarters"`
	Homepage      string  `json:"homepage"       yaml:"homepage"`
	ID            int64   `json:"id"             yaml:"id"`
	LogoPath      *string `json:"logo_path"      yaml:"logo_path"`
	Name          string  `json:"name"           yaml:"name"`
	OriginCountry string  `json:"origin_country" yaml:"origin_country"`
}

// NetworkAlternativeNames is the envelope for network alternative names.
type NetworkAlternativeNames struct {
	ID      int64             `json:"id"      yaml:"id"`
	Results []AlternativeName `json:"results" yaml:"results"`
}

// NetworkImages is the envelope for network logos.
type NetworkImages struct {
	ID    int64   `json:"id"    yaml:"id"`
	Logos []Image `json:"logos" yaml:"logos"`
}
