package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents the TMDB error envelope returned with any non-2xx
// response.
type APIError struct {
	StatusCode    int    `json:"status_code"    yaml:"status_code"`
	StatusMessage string `json:"status_message" yaml:"status_message"`
	Success       bool   `json:"success"        yaml:"success"`

	// HTTPStatus is the HTTP status the envelope arrived with. It is not
	// part of the JSON body.
	HTTPStatus int `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.StatusMessage, e.StatusCode)
}

// TMDB API status codes. The full list is documented at
// https://developer.themoviedb.org/docs/errors; only the codes the client
// inspects are named here.
const (
	StatusCodeInvalidService    = 2
	StatusCodeInvalidAPIKey     = 7
	StatusCodeDuplicateEntry    = 8
	StatusCodeServiceOffline    = 9
	StatusCodeSuspendedAPIKey   = 10
	StatusCodeInternalError     = 11
	StatusCodeInvalidID         = 6
	StatusCodeInvalidPage       = 22
	StatusCodeBackendTimeout    = 24
	StatusCodeRateLimited       = 25
	StatusCodeResourceNotFound  = 34
	StatusCodeInvalidDateFormat = 40
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrCredentialsRequired    = errors.New("an API key or access token is required")
	ErrBaseURLRequired        = errors.New("base URL is required")
	ErrEmptyQuery             = errors.New("query must not be empty")
	ErrInvalidMovieID         = errors.New("movie id must be positive")
	ErrInvalidTVShowID        = errors.New("tv show id must be positive")
	ErrInvalidSeasonNumber    = errors.New("season number must not be negative")
	ErrInvalidEpisodeNumber   = errors.New("episode number must be positive")
	ErrInvalidPersonID        = errors.New("person id must be positive")
	ErrInvalidCompanyID       = errors.New("company id must be positive")
	ErrInvalidCollectionID    = errors.New("collection id must be positive")
	ErrInvalidNetworkID       = errors.New("network id must be positive")
	ErrInvalidKeywordID       = errors.New("keyword id must be positive")
	ErrReviewIDRequired       = errors.New("review id must not be empty")
	ErrCreditIDRequired       = errors.New("credit id must not be empty")
	ErrExternalIDRequired     = errors.New("external id must not be empty")
	ErrExternalSourceRequired = errors.New("external source must not be empty")
	ErrNoMoreItems            = errors.New("no more items")
	ErrFiltersRequired        = errors.New("filters are required")
)

// IsNotFound checks whether the error is a TMDB resource-not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == StatusCodeResourceNotFound
	}

	return false
}

// IsInvalidAPIKey checks whether the error reports an invalid or
// suspended API key.
func IsInvalidAPIKey(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == StatusCodeInvalidAPIKey ||
			apiErr.StatusCode == StatusCodeSuspendedAPIKey
	}

	return false
}

// IsRateLimited checks whether the error reports request-rate limiting.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == StatusCodeRateLimited
	}

	return false
}

// ParseAPIError parses a TMDB error envelope from a response body.
// httpStatus is attached to the returned error for callers that need the
// transport-level status.
func ParseAPIError(data []byte, httpStatus int) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error envelope: %w", err)
	}

	apiErr.HTTPStatus = httpStatus

	return &apiErr, nil
}
