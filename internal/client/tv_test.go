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

func TestTVClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		details := tmdb.TVShowDetails{
			ID:               1399,
			Name:             "Game of Thrones",
			NumberOfSeasons:  8,
			NumberOfEpisodes: 73,
			Seasons: []tmdb.TVSeason{
				{ID: 3624, SeasonNumber: 1, EpisodeCount: 10},
			},
		}

		_ = json.NewEncoder(w).Encode(details)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	show, err := client.TV().Get(context.Background(), 1399, tmdb.NewQueryParams().WithLanguage("en-US"))
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", show.Name)
	assert.Equal(t, 8, show.NumberOfSeasons)
	require.Len(t, show.Seasons, 1)
	assert.Equal(t, 1, show.Seasons[0].SeasonNumber)
}

func TestTVClient_Get_InvalidID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.TV().Get(context.Background(), 0, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidTVShowID)

	_, err = client.TV().AggregateCredits(context.Background(), -1, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidTVShowID)
}

func TestTVClient_Lists(t *testing.T) {
	shows := []tmdb.TVShow{{ID: 1399, Name: "Game of Thrones"}}

	RunPageTest(t, "airing today", "/tv/airing_today", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().AiringToday(ctx, nil)
		})

	RunPageTest(t, "on the air", "/tv/on_the_air", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().OnTheAir(ctx, nil)
		})

	RunPageTest(t, "popular", "/tv/popular", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().Popular(ctx, nil)
		})

	RunPageTest(t, "top rated", "/tv/top_rated", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().TopRated(ctx, nil)
		})

	RunPageTest(t, "recommendations", "/tv/1399/recommendations", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().Recommendations(ctx, 1399, nil)
		})

	RunPageTest(t, "similar", "/tv/1399/similar", shows,
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.TV().Similar(ctx, 1399, nil)
		})
}

func TestTVClient_AggregateCredits(t *testing.T) {
	credits := tmdb.AggregateCredits{
		ID: 1399,
		Cast: []tmdb.AggregateCastMember{
			{
				ID:   22970,
				Name: "Peter Dinklage",
				Roles: []tmdb.AggregateCastRole{
					{Character: "Tyrion Lannister", EpisodeCount: 73},
				},
				TotalEpisodeCount: 73,
			},
		},
		Crew: []tmdb.AggregateCrewMember{
			{
				ID:         9813,
				Name:       "David Benioff",
				Department: "Writing",
				Jobs: []tmdb.AggregateCrewJob{
					{Job: "Writer", EpisodeCount: 41},
				},
			},
		},
	}

	server := NewTestServer(t, "/tv/1399/aggregate_credits", credits)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TV().AggregateCredits(context.Background(), 1399, nil)
	require.NoError(t, err)
	require.Len(t, result.Cast, 1)
	assert.Equal(t, "Tyrion Lannister", result.Cast[0].Roles[0].Character)
	assert.Equal(t, 73, result.Cast[0].TotalEpisodeCount)
	assert.Equal(t, "Writer", result.Crew[0].Jobs[0].Job)
}

func TestTVClient_ContentRatings(t *testing.T) {
	ratings := tmdb.TVContentRatings{
		ID: 1399,
		Results: []tmdb.TVContentRating{
			{ISO31661: "US", Rating: "TV-MA"},
			{ISO31661: "DE", Rating: "16"},
		},
	}

	server := NewTestServer(t, "/tv/1399/content_ratings", ratings)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TV().ContentRatings(context.Background(), 1399)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "TV-MA", result.Results[0].Rating)
}

func TestTVClient_ExternalIDs(t *testing.T) {
	imdb := "tt0944947"
	tvdb := int64(121361)
	ids := tmdb.ExternalIDs{ID: 1399, IMDbID: &imdb, TVDBID: &tvdb}

	server := NewTestServer(t, "/tv/1399/external_ids", ids)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TV().ExternalIDs(context.Background(), 1399)
	require.NoError(t, err)
	require.NotNil(t, result.IMDbID)
	assert.Equal(t, "tt0944947", *result.IMDbID)
	require.NotNil(t, result.TVDBID)
	assert.Equal(t, int64(121361), *result.TVDBID)
}

func TestTVClient_Keywords(t *testing.T) {
	keywords := tmdb.TVKeywords{
		ID:      1399,
		Results: []tmdb.Keyword{{ID: 6091, Name: "war"}},
	}

	server := NewTestServer(t, "/tv/1399/keywords", keywords)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TV().Keywords(context.Background(), 1399)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "war", result.Results[0].Name)
}

func TestTVClient_WatchProviders(t *testing.T) {
	providers := tmdb.WatchProviderResults{
		ID: 1399,
		Results: map[string]tmdb.CountryWatchProviders{
			"GB": {
				Flatrate: []tmdb.WatchProvider{
					{ProviderID: 39, ProviderName: "StreamBox"},
				},
			},
		},
	}

	server := NewTestServer(t, "/tv/1399/watch/providers", providers)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TV().WatchProviders(context.Background(), 1399)
	require.NoError(t, err)
	require.Contains(t, result.Results, "GB")
	assert.Equal(t, "StreamBox", result.Results["GB"].Flatrate[0].ProviderName)
}
