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

func TestSearchClient_Movies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "fight club", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "true", r.URL.Query().Get("include_adult"))

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Movie]{
			Page:         2,
			Results:      []tmdb.Movie{{ID: 550, Title: "Fight Club"}},
			TotalPages:   2,
			TotalResults: 21,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := tmdb.NewQueryParams().WithPage(2).WithIncludeAdult(true)

	page, err := client.Search().Movies(context.Background(), "fight club", params)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Fight Club", page.Results[0].Title)
}

func TestSearchClient_EmptyQuery(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")
	ctx := context.Background()

	_, err := client.Search().Movies(ctx, "", nil)
	require.ErrorIs(t, err, tmdb.ErrEmptyQuery)

	_, err = client.Search().TV(ctx, "", nil)
	require.ErrorIs(t, err, tmdb.ErrEmptyQuery)

	_, err = client.Search().People(ctx, "", nil)
	require.ErrorIs(t, err, tmdb.ErrEmptyQuery)

	_, err = client.Search().Multi(ctx, "", nil)
	require.ErrorIs(t, err, tmdb.ErrEmptyQuery)
}

func TestSearchClient_TV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "thrones", r.URL.Query().Get("query"))

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.TVShow]{
			Page:         1,
			Results:      []tmdb.TVShow{{ID: 1399, Name: "Game of Thrones"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().TV(context.Background(), "thrones", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Game of Thrones", page.Results[0].Name)
}

func TestSearchClient_People(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/person", r.URL.Path)
		assert.Equal(t, "norton", r.URL.Query().Get("query"))

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Person]{
			Page:         1,
			Results:      []tmdb.Person{{ID: 819, Name: "Edward Norton"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().People(context.Background(), "norton", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Edward Norton", page.Results[0].Name)
}

func TestSearchClient_Companies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/company", r.URL.Path)

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Company]{
			Page:         1,
			Results:      []tmdb.Company{{ID: 1, Name: "Lucasfilm"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().Companies(context.Background(), "lucasfilm", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
}

func TestSearchClient_Collections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/collection", r.URL.Path)

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Collection]{
			Page:         1,
			Results:      []tmdb.Collection{{ID: 10, Name: "Star Wars Collection"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().Collections(context.Background(), "star wars", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
}

func TestSearchClient_Keywords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/keyword", r.URL.Path)

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.Keyword]{
			Page:         1,
			Results:      []tmdb.Keyword{{ID: 3417, Name: "dystopia"}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().Keywords(context.Background(), "dystopia", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "dystopia", page.Results[0].Name)
}

func TestSearchClient_Multi(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)

		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.MultiResult]{
			Page: 1,
			Results: []tmdb.MultiResult{
				{MediaType: tmdb.MediaTypeMovie, ID: 550, Title: "Fight Club"},
				{MediaType: tmdb.MediaTypePerson, ID: 819, Name: "Edward Norton"},
			},
			TotalPages:   1,
			TotalResults: 2,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Search().Multi(context.Background(), "fight", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, tmdb.MediaTypeMovie, page.Results[0].MediaType)
	assert.Equal(t, tmdb.MediaTypePerson, page.Results[1].MediaType)
}
