package tmdb

import "context"

// CertificationsClient provides access to the certification endpoints.
type CertificationsClient interface {
	// Movie returns the movie certifications per country.
	Movie(ctx context.Context) (*CertificationList, error)
	// TV returns the TV certifications per country.
	TV(ctx context.Context) (*CertificationList, error)
}

// Certification is a single rating within a country's system.
type Certification struct {
	Certification string `json:"certification" yaml:"certification"`
	Meaning       string `json:"meaning"       yaml:"meaning"`
	Order         int    `json:"order"         yaml:"order"`
}

// CertificationList maps ISO 3166-1 country codes to their
// certifications.
type CertificationList struct {
	Certifications map[string][]Certification `json:"certifications" yaml:"certifications"`
}
