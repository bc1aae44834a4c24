package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsClient_Get(t *testing.T) {
	rating := 9.0
	details := tmdb.ReviewDetails{
		Review: tmdb.Review{
			ID:      "58aa82f09251416f92006a3a",
			Author:  "moviefan",
			Content: "A modern classic.",
			AuthorDetails: tmdb.ReviewAuthor{
				Username: "moviefan",
				Rating:   &rating,
			},
		},
		MediaID:    550,
		MediaTitle: "Fight Club",
		MediaType:  "movie",
	}

	server := NewTestServer(t, "/review/58aa82f09251416f92006a3a", details)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	review, err := client.Reviews().Get(context.Background(), "58aa82f09251416f92006a3a")
	require.NoError(t, err)
	assert.Equal(t, "moviefan", review.Author)
	assert.Equal(t, "Fight Club", review.MediaTitle)
	require.NotNil(t, review.AuthorDetails.Rating)
	assert.InDelta(t, 9.0, *review.AuthorDetails.Rating, 0.001)
}

func TestReviewsClient_Get_EmptyID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Reviews().Get(context.Background(), "")
	require.ErrorIs(t, err, tmdb.ErrReviewIDRequired)
}
