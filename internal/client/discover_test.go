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

func TestDiscoverClient_Movies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		assert.Equal(t, "18,878", r.URL.Query().Get("with_genres"))
		assert.Equal(t, "popularity.desc", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "1999-01-01", r.URL.Query().Get("primary_release_date.gte"))
		assert.Equal(t, "3|4", r.URL.Query().Get("with_release_type"))

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Movie]{
			Page:         1,
			Results:      []tmdb.Movie{{ID: 550, Title: "Fight Club"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	filters := &tmdb.DiscoverMovieFilters{
		SortBy:                "popularity.desc",
		WithGenres:            []int64{18, 878},
		PrimaryReleaseDateGTE: "1999-01-01",
		WithReleaseTypes:      []int{3, 4},
	}

	page, err := client.Discover().Movies(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Fight Club", page.Results[0].Title)
}

func TestDiscoverClient_Movies_NilFilters(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Discover().Movies(context.Background(), nil)
	require.ErrorIs(t, err, tmdb.ErrFiltersRequired)

	_, err = client.Discover().TV(context.Background(), nil)
	require.ErrorIs(t, err, tmdb.ErrFiltersRequired)
}

func TestDiscoverClient_Movies_InvalidFilters(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	filters := &tmdb.DiscoverMovieFilters{
		SortBy: "box_office.desc",
		Page:   9000,
	}

	_, err := client.Discover().Movies(context.Background(), filters)
	require.Error(t, err)

	var filterErr *tmdb.FilterValidationError
	require.ErrorAs(t, err, &filterErr)
}

func TestDiscoverClient_TV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/tv", r.URL.Path)
		assert.Equal(t, "213", r.URL.Query().Get("with_networks"))
		assert.Equal(t, "first_air_date.desc", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "true", r.URL.Query().Get("screened_theatrically"))

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.TVShow]{
			Page:         1,
			Results:      []tmdb.TVShow{{ID: 66732, Name: "Stranger Things"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	filters := &tmdb.DiscoverTVFilters{
		SortBy:               "first_air_date.desc",
		WithNetworks:         []int64{213},
		ScreenedTheatrically: true,
	}

	page, err := client.Discover().TV(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Stranger Things", page.Results[0].Name)
}
