package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// NewTestClient creates a client pointed at a test server, with a dummy
// API key so the credential check passes.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&tmdb.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
	require.NoError(t, err)

	return client
}

// NewTestServer starts a test server that asserts the request path and
// method and replies with the given payload.
func NewTestServer(t *testing.T, expectedPath string, response interface{}) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(response)
	}))
}

// NewNotFoundServer starts a test server that replies with the standard
// not-found envelope.
func NewNotFoundServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(tmdb.APIError{
			StatusCode:    tmdb.StatusCodeResourceNotFound,
			StatusMessage: "The resource you requested could not be found.",
		})
	}))
}

// NewInvalidKeyServer starts a test server that rejects every request
// with the invalid-key envelope.
func NewInvalidKeyServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(writer).Encode(tmdb.APIError{
			StatusCode:    tmdb.StatusCodeInvalidAPIKey,
			StatusMessage: "Invalid API key: You must be granted a valid key.",
		})
	}))
}

// RunPageTest runs a list endpoint test returning a page envelope.
func RunPageTest[T any](
	t *testing.T,
	testName string,
	expectedPath string,
	results []T,
	call func(*Client, context.Context) (*tmdb.Page[T], error),
) {
	t.Helper()
	t.Run(testName, func(t *testing.T) {
		response := tmdb.Page[T]{
			Page:         1,
			Results:      results,
			TotalPages:   1,
			TotalResults: len(results),
		}

		server := NewTestServer(t, expectedPath, response)
		defer server.Close()

		client := NewTestClient(t, server.URL)

		page, err := call(client, context.Background())
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Results, len(results))
		assert.Equal(t, len(results), page.TotalResults)
	})
}

// NewTestHTTPClient creates a bare transport for resource clients that
// are constructed directly in a test.
func NewTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, nil)
}
