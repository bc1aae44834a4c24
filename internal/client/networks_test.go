package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworksClient_Get(t *testing.T) {
	details := tmdb.NetworkDetails{
		ID:            213,
		Name:          "Netflix",
		OriginCountry: "US",
	}

	server := NewTestServer(t, "/network/213", details)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	network, err := client.Networks().Get(context.Background(), 213)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", network.Name)
}

func TestNetworksClient_Get_InvalidID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Networks().Get(context.Background(), -1)
	require.ErrorIs(t, err, tmdb.ErrInvalidNetworkID)
}

func TestNetworksClient_AlternativeNames(t *testing.T) {
	names := tmdb.NetworkAlternativeNames{
		ID:      49,
		Results: []tmdb.AlternativeName{{Name: "Home Box Office"}},
	}

	server := NewTestServer(t, "/network/49/alternative_names", names)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Networks().AlternativeNames(context.Background(), 49)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Home Box Office", result.Results[0].Name)
}

func TestNetworksClient_Images(t *testing.T) {
	images := tmdb.NetworkImages{
		ID:    213,
		Logos: []tmdb.Image{{FilePath: "/netflix.png"}},
	}

	server := NewTestServer(t, "/network/213/images", images)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Networks().Images(context.Background(), 213)
	require.NoError(t, err)
	require.Len(t, result.Logos, 1)
}
