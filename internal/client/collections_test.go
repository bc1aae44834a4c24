package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionsClient_Get(t *testing.T) {
	details := tmdb.CollectionDetails{
		ID:   10,
		Name: "Star Wars Collection",
		Parts: []tmdb.Movie{
			{ID: 11, Title: "Star Wars"},
			{ID: 1891, Title: "The Empire Strikes Back"},
		},
	}

	server := NewTestServer(t, "/collection/10", details)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	collection, err := client.Collections().Get(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Equal(t, "Star Wars Collection", collection.Name)
	require.Len(t, collection.Parts, 2)
	assert.Equal(t, "Star Wars", collection.Parts[0].Title)
}

func TestCollectionsClient_Get_InvalidID(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.Collections().Get(context.Background(), 0, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidCollectionID)
}

func TestCollectionsClient_Images(t *testing.T) {
	images := tmdb.CollectionImages{
		ID:      10,
		Posters: []tmdb.Image{{FilePath: "/poster.jpg"}},
	}

	server := NewTestServer(t, "/collection/10/images", images)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Collections().Images(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, result.Posters, 1)
}

func TestCollectionsClient_Translations(t *testing.T) {
	translations := tmdb.TranslationList[tmdb.CollectionTranslationData]{
		ID: 10,
		Translations: []tmdb.Translation[tmdb.CollectionTranslationData]{
			{ISO6391: "fr", Data: tmdb.CollectionTranslationData{Title: "Star Wars - Saga"}},
		},
	}

	server := NewTestServer(t, "/collection/10/translations", translations)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.Collections().Translations(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, result.Translations, 1)
	assert.Equal(t, "Star Wars - Saga", result.Translations[0].Data.Title)
}
