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

func TestGenresClient_Movie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		assert.Equal(t, "de", r.URL.Query().Get("language"))

		_ = json.NewEncoder(w).Encode(tmdb.GenreList{
			Genres: []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	genres, err := client.Genres().Movie(context.Background(), tmdb.NewQueryParams().WithLanguage("de"))
	require.NoError(t, err)
	require.Len(t, genres.Genres, 2)
	assert.Equal(t, "Action", genres.Genres[0].Name)
}

func TestGenresClient_TV(t *testing.T) {
	list := tmdb.GenreList{
		Genres: []tmdb.Genre{{ID: 10759, Name: "Action & Adventure"}},
	}

	server := NewTestServer(t, "/genre/tv/list", list)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	genres, err := client.Genres().TV(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, genres.Genres, 1)
	assert.Equal(t, "Action & Adventure", genres.Genres[0].Name)
}
