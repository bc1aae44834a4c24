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

func TestWatchProvidersClient_Regions(t *testing.T) {
	regions := tmdb.WatchProviderRegions{
		Results: []tmdb.WatchProviderRegion{
			{ISO31661: "US", EnglishName: "United States of America"},
			{ISO31661: "DE", EnglishName: "Germany"},
		},
	}

	server := NewTestServer(t, "/watch/providers/regions", regions)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.WatchProviders().Regions(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "DE", result.Results[1].ISO31661)
}

func TestWatchProvidersClient_Movie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/watch/providers/movie", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("watch_region"))

		_ = json.NewEncoder(w).Encode(tmdb.WatchProviderList{
			Results: []tmdb.WatchProvider{
				{ProviderID: 8, ProviderName: "StreamCo", DisplayPriority: 1},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := tmdb.NewQueryParams().WithExtra("watch_region", "US")

	result, err := client.WatchProviders().Movie(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "StreamCo", result.Results[0].ProviderName)
}

func TestWatchProvidersClient_TV(t *testing.T) {
	list := tmdb.WatchProviderList{
		Results: []tmdb.WatchProvider{{ProviderID: 39, ProviderName: "StreamBox"}},
	}

	server := NewTestServer(t, "/watch/providers/tv", list)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.WatchProviders().TV(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
}
