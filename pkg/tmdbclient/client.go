// Package tmdbclient provides the main entry point for creating TMDB API clients
package tmdbclient

import (
	"fmt"
	"strings"

	"github.com/moviekit/tmdb-client/internal/client"
	"github.com/moviekit/tmdb-client/internal/constants"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// New creates a new TMDB API client from config.
func New(config *tmdb.Config) (tmdb.Client, error) {
	if config == nil {
		return nil, tmdb.ErrConfigRequired
	}

	if config.APIKey == "" && config.AccessToken == "" {
		return nil, tmdb.ErrCredentialsRequired
	}

	// Normalize the base URL
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	// Work on a copy so the caller's config is left untouched.
	normalized := *config
	normalized.BaseURL = baseURL

	tmdbClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return tmdbClient, nil
}

// NewWithAPIKey creates a new client with a v3 API key.
func NewWithAPIKey(apiKey string) (tmdb.Client, error) {
	return New(&tmdb.Config{
		APIKey: apiKey,
	})
}

// NewWithBearerToken creates a new client with a v4 read access token.
func NewWithBearerToken(token string) (tmdb.Client, error) {
	return New(&tmdb.Config{
		AccessToken: token,
	})
}
