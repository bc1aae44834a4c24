package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClient_ByExternalID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/find/tt0137523", r.URL.Path)
		assert.Equal(t, "imdb_id", r.URL.Query().Get("external_source"))

		_ = json.NewEncoder(w).Encode(tmdb.FindResults{
			MovieResults: []tmdb.Movie{{ID: 550, Title: "Fight Club"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	results, err := client.Find().ByExternalID(context.Background(), "tt0137523", tmdb.ExternalSourceIMDb, nil)
	require.NoError(t, err)
	require.Len(t, results.MovieResults, 1)
	assert.Equal(t, "Fight Club", results.MovieResults[0].Title)
	assert.Empty(t, results.TVResults)
}

func TestFindClient_ByExternalID_TVDB(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/find/121361", r.URL.Path)
		assert.Equal(t, "tvdb_id", r.URL.Query().Get("external_source"))

		_ = json.NewEncoder(w).Encode(tmdb.FindResults{
			TVResults: []tmdb.TVShow{{ID: 1399, Name: "Game of Thrones"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	results, err := client.Find().ByExternalID(context.Background(), "121361", tmdb.ExternalSourceTVDB, nil)
	require.NoError(t, err)
	require.Len(t, results.TVResults, 1)
	assert.Equal(t, "Game of Thrones", results.TVResults[0].Name)
}

func TestFindClient_ByExternalID_Invalid(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Find().ByExternalID(context.Background(), "", tmdb.ExternalSourceIMDb, nil)
	require.ErrorIs(t, err, tmdb.ErrExternalIDRequired)

	_, err = client.Find().ByExternalID(context.Background(), "tt0137523", "", nil)
	require.ErrorIs(t, err, tmdb.ErrExternalSourceRequired)
}
