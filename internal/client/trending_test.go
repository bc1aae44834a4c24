package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingClient_All(t *testing.T) {
	response := tmdb.Page[tmdb.MultiResult]{
		Page: 1,
		Results: []tmdb.MultiResult{
			{MediaType: tmdb.MediaTypeMovie, ID: 550, Title: "Fight Club"},
			{MediaType: tmdb.MediaTypeTV, ID: 1399, Name: "Game of Thrones"},
		},
		TotalPages:   1,
		TotalResults: 2,
	}

	server := NewTestServer(t, "/trending/all/week", response)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Trending().All(context.Background(), tmdb.TimeWindowWeek, nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, tmdb.MediaTypeTV, page.Results[1].MediaType)
}

func TestTrendingClient_DefaultWindow(t *testing.T) {
	response := tmdb.Page[tmdb.Movie]{
		Page:         1,
		Results:      []tmdb.Movie{{ID: 550, Title: "Fight Club"}},
		TotalPages:   1,
		TotalResults: 1,
	}

	server := NewTestServer(t, "/trending/movie/day", response)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	page, err := client.Trending().Movies(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
}

func TestTrendingClient_TV(t *testing.T) {
	RunPageTest(t, "trending tv", "/trending/tv/day",
		[]tmdb.TVShow{{ID: 1399, Name: "Game of Thrones"}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.TVShow], error) {
			return c.Trending().TV(ctx, tmdb.TimeWindowDay, nil)
		})
}

func TestTrendingClient_People(t *testing.T) {
	RunPageTest(t, "trending people", "/trending/person/week",
		[]tmdb.Person{{ID: 819, Name: "Edward Norton"}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.Person], error) {
			return c.Trending().People(ctx, tmdb.TimeWindowWeek, nil)
		})
}
