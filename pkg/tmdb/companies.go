package tmdb

import "context"

// CompaniesClient provides access to the company endpoints.
type CompaniesClient interface {
	// Get returns the details of a company.
	Get(ctx context.Context, companyID int64) (*CompanyDetails, error)
	// AlternativeNames returns the alternative names of a company.
	AlternativeNames(ctx context.Context, companyID int64) (*CompanyAlternativeNames, error)
	// Images returns the logos of a company.
	Images(ctx context.Context, companyID int64) (*CompanyImages, error)
}

// Company represents a company as returned by search endpoints.
type Company struct {
	ID            int64   `json:"id"             yaml:"id"`
	LogoPath      *string `json:"logo_path"      yaml:"logo_path"`
	Name          string  `json:"name"           yaml:"name"`
	OriginCountry string  `json:"origin_country" yaml:"origin_country"`
}

// CompanyDetails represents the full company payload.
type CompanyDetails struct {
	Description   string   `json:"description"    yaml:"description"`
	Headquarters  string   `json:"headquarters"   yaml:"headquarters"`
	Homepage      string   `json:"homepage"       yaml:"homepage"`
	ID            int64    `json:"id"             yaml:"id"`
	LogoPath      *string  `json:"logo_path"      yaml:"logo_path"`
	Name          string   `json:"name"           yaml:"name"`
	OriginCountry string   `json:"origin_country" yaml:"origin_country"`
	ParentCompany *Company `json:"parent_company" yaml:"parent_company"`
}

// CompanyAlternativeNames is the envelope for company alternative names.
type CompanyAlternativeNames struct {
	ID      int64             `json:"id"      yaml:"id"`
	Results []AlternativeName `json:"results" yaml:"results"`
}

// CompanyImages is the envelope for company logos.
type CompanyImages struct {
	ID    int64   `json:"id"    yaml:"id"`
	Logos []Image `json:"logos" yaml:"logos"`
}
