package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsClient_Get(t *testing.T) {
	keyword := tmdb.Keyword{ID: 3417, Name: "dystopia"}

	server := NewTestServer(t, "/keyword/3417", keyword)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Keywords().Get(context.Background(), 3417)
	require.NoError(t, err)
	assert.Equal(t, "dystopia", result.Name)
}

func TestKeywordsClient_Get_InvalidID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Keywords().Get(context.Background(), 0)
	require.ErrorIs(t, err, tmdb.ErrInvalidKeywordID)
}
