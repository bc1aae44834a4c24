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

func TestMoviesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "videos,credits", r.URL.Query().Get("append_to_response"))

		details := tmdb.MovieDetails{
			ID:            550,
			Title:         "Fight Club",
			OriginalTitle: "Fight Club",
			ReleaseDate:   "1999-10-15",
			Runtime:       139,
			Genres:        []tmdb.Genre{{ID: 18, Name: "Drama"}},
		}

		_ = json.NewEncoder(w).Encode(details)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := tmdb.NewQueryParams().
		WithLanguage("en-US").
		WithAppendToResponse("videos", "credits")

	movie, err := client.Movies().Get(context.Background(), 550, params)
	require.NoError(t, err)
	assert.Equal(t, int64(550), movie.ID)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, 139, movie.Runtime)
}

func TestMoviesClient_Get_InvalidID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Movies().Get(context.Background(), 0, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidMovieID)

	_, err = client.Movies().Get(context.Background(), -5, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidMovieID)
}

func TestMoviesClient_Get_NotFound(t *testing.T) {
	server := NewNotFoundServer(t)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	_, err := client.Movies().Get(context.Background(), 999999999, nil)
	require.Error(t, err)
	assert.True(t, tmdb.IsNotFound(err))
}

func TestMoviesClient_Lists(t *testing.T) {
	RunPageTest(t, "movie lists", "/movie/550/lists",
		[]tmdb.MovieList{{ID: 1, Name: "favorites"}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.MovieList], error) {
			return c.Movies().Lists(ctx, 550, nil)
		})
}

func TestMoviesClient_Popular(t *testing.T) {
	RunPageTest(t, "popular movies", "/movie/popular",
		[]tmdb.Movie{{ID: 550, Title: "Fight Club"}, {ID: 603, Title: "The Matrix"}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.Movie], error) {
			return c.Movies().Popular(ctx, nil)
		})
}

func TestMoviesClient_TopRated(t *testing.T) {
	RunPageTest(t, "top rated movies", "/movie/top_rated",
		[]tmdb.Movie{{ID: 278, Title: "The Shawshank Redemption"}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.Movie], error) {
			return c.Movies().TopRated(ctx, nil)
		})
}

func TestMoviesClient_NowPlaying(t *testing.T) {
	response := tmdb.DatedPage[tmdb.Movie]{
		Page: tmdb.Page[tmdb.Movie]{
			Page:         1,
			Results:      []tmdb.Movie{{ID: 1, Title: "New Release"}},
			TotalPages:   1,
			TotalResults: 1,
		},
		Dates: tmdb.DateRange{Minimum: "2026-07-01", Maximum: "2026-08-15"},
	}

	server := NewTestServer(t, "/movie/now_playing", response)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Movies().NowPlaying(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", page.Dates.Minimum)
	assert.Len(t, page.Results, 1)
}

func TestMoviesClient_Credits(t *testing.T) {
	credits := tmdb.Credits{
		ID: 550,
		Cast: []tmdb.CastMember{
			{ID: 819, Name: "Edward Norton", Character: "The Narrator"},
		},
		Crew: []tmdb.CrewMember{
			{ID: 7467, Name: "David Fincher", Job: "Director"},
		},
	}

	server := NewTestServer(t, "/movie/550/credits", credits)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Movies().Credits(context.Background(), 550, nil)
	require.NoError(t, err)
	assert.Len(t, result.Cast, 1)
	assert.Equal(t, "The Narrator", result.Cast[0].Character)
	assert.Equal(t, "Director", result.Crew[0].Job)
}

func TestMoviesClient_ReleaseDates(t *testing.T) {
	dates := tmdb.MovieReleaseDates{
		ID: 550,
		Results: []tmdb.CountryReleaseDates{
			{
				ISO31661: "US",
				ReleaseDates: []tmdb.ReleaseDate{
					{Certification: "R", ReleaseDate: "1999-10-15T00:00:00.000Z", Type: 3},
				},
			},
		},
	}

	server := NewTestServer(t, "/movie/550/release_dates", dates)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Movies().ReleaseDates(context.Background(), 550)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "US", result.Results[0].ISO31661)
	assert.Equal(t, "R", result.Results[0].ReleaseDates[0].Certification)
}

func TestMoviesClient_Translations(t *testing.T) {
	translations := tmdb.TranslationList[tmdb.MovieTranslationData]{
		ID: 550,
		Translations: []tmdb.Translation[tmdb.MovieTranslationData]{
			{
				ISO31661:    "DE",
				ISO6391:     "de",
				Name:        "Deutsch",
				EnglishName: "German",
				Data:        tmdb.MovieTranslationData{Title: "Fight Club"},
			},
		},
	}

	server := NewTestServer(t, "/movie/550/translations", translations)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Movies().Translations(context.Background(), 550)
	require.NoError(t, err)
	require.Len(t, result.Translations, 1)
	assert.Equal(t, "de", result.Translations[0].ISO6391)
}

func TestMoviesClient_WatchProviders(t *testing.T) {
	providers := tmdb.WatchProviderResults{
		ID: 550,
		Results: map[string]tmdb.CountryWatchProviders{
			"US": {
				Link: "https://example.org/watch/550",
				Flatrate: []tmdb.WatchProvider{
					{ProviderID: 8, ProviderName: "StreamCo", DisplayPriority: 1},
				},
			},
		},
	}

	server := NewTestServer(t, "/movie/550/watch/providers", providers)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Movies().WatchProviders(context.Background(), 550)
	require.NoError(t, err)
	require.Contains(t, result.Results, "US")
	assert.Equal(t, "StreamCo", result.Results["US"].Flatrate[0].ProviderName)
}
