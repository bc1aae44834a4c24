package tmdb

import "context"

// CreditsClient provides access to the credit lookup endpoint.
type CreditsClient interface {
	// Get returns the details of a single credit by credit id.
	Get(ctx context.Context, creditID string) (*CreditDetails, error)
}

// CreditMedia describes the media a credit is attached to.
type CreditMedia struct {
	MultiResult

	Character string `json:"character" yaml:"character"`
}

// CreditPerson describes the person holding a credit.
type CreditPerson struct {
	Adult              bool    `json:"adult"                yaml:"adult"`
	Gender             int     `json:"gender"               yaml:"gender"`
	ID                 int64   `json:"id"                   yaml:"id"`
	KnownForDepartment string  `json:"known_for_department" yaml:"known_for_department"`
	MediaType          string  `json:"media_type"           yaml:"media_type"`
	Name               string  `json:"name"                 yaml:"name"`
	OriginalName       string  `json:"original_name"        yaml:"original_name"`
	Popularity         float64 `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string `json:"profile_path"         yaml:"profile_path"`
}

// CreditDetails represents the full credit payload.
type CreditDetails struct {
	CreditType string       `json:"credit_type" yaml:"credit_type"`
	Department string       `json:"department"  yaml:"department"`
	Job        string       `json:"job"         yaml:"job"`
	Media      CreditMedia  `json:"media"       yaml:"media"`
	MediaType  string       `json:"media_type"  yaml:"media_type"`
	ID         string       `json:"id"          yaml:"id"`
	Person     CreditPerson `json:"person"      yaml:"person"`
}
