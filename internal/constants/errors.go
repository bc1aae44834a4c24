package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoCredentialsConfigured = errors.New("no credentials configured, use 'tmdb config set-key' or set TMDB_API_KEY")
	ErrUnknownOutputFormat     = errors.New("unknown output format, expected table, json, or yaml")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
)
