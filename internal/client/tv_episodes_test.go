package client

import (
	"context"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTVEpisodesClient_Get(t *testing.T) {
	details := tmdb.TVEpisodeDetails{
		ID:            63056,
		Name:          "Winter Is Coming",
		SeasonNumber:  1,
		EpisodeNumber: 1,
		Runtime:       62,
	}

	server := NewTestServer(t, "/tv/1399/season/1/episode/1", details)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	episode, err := client.TVEpisodes().Get(context.Background(), 1399, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Winter Is Coming", episode.Name)
	assert.Equal(t, 62, episode.Runtime)
}

func TestTVEpisodesClient_Get_Invalid(t *testing.T) {
	client := NewTestClient(t, "http://localhost:0")

	_, err := client.TVEpisodes().Get(context.Background(), 0, 1, 1, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidTVShowID)

	_, err = client.TVEpisodes().Get(context.Background(), 1399, -1, 1, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidSeasonNumber)

	_, err = client.TVEpisodes().Get(context.Background(), 1399, 1, 0, nil)
	require.ErrorIs(t, err, tmdb.ErrInvalidEpisodeNumber)
}

func TestTVEpisodesClient_Credits(t *testing.T) {
	credits := tmdb.TVEpisodeCredits{
		ID: 63056,
		Cast: []tmdb.CastMember{
			{ID: 12795, Name: "Sean Bean", Character: "Eddard Stark"},
		},
		GuestStars: []tmdb.CastMember{
			{ID: 946696, Name: "Guest Actor", Character: "Wildling"},
		},
	}

	server := NewTestServer(t, "/tv/1399/season/1/episode/1/credits", credits)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TVEpisodes().Credits(context.Background(), 1399, 1, 1, nil)
	require.NoError(t, err)
	require.Len(t, result.Cast, 1)
	assert.Equal(t, "Eddard Stark", result.Cast[0].Character)
	require.Len(t, result.GuestStars, 1)
	assert.Equal(t, "Wildling", result.GuestStars[0].Character)
}

func TestTVEpisodesClient_ExternalIDs(t *testing.T) {
	imdb := "tt1480055"
	ids := tmdb.ExternalIDs{ID: 63056, IMDbID: &imdb}

	server := NewTestServer(t, "/tv/1399/season/1/episode/1/external_ids", ids)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TVEpisodes().ExternalIDs(context.Background(), 1399, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, result.IMDbID)
	assert.Equal(t, "tt1480055", *result.IMDbID)
}

func TestTVEpisodesClient_Images(t *testing.T) {
	images := tmdb.TVEpisodeImages{
		ID:     63056,
		Stills: []tmdb.Image{{FilePath: "/still.jpg", Width: 1920, Height: 1080}},
	}

	server := NewTestServer(t, "/tv/1399/season/1/episode/1/images", images)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TVEpisodes().Images(context.Background(), 1399, 1, 1, nil)
	require.NoError(t, err)
	require.Len(t, result.Stills, 1)
	assert.Equal(t, 1920, result.Stills[0].Width)
}

func TestTVEpisodesClient_Translations(t *testing.T) {
	translations := tmdb.TranslationList[tmdb.TVEpisodeTranslationData]{
		ID: 63056,
		Translations: []tmdb.Translation[tmdb.TVEpisodeTranslationData]{
			{ISO6391: "de", Data: tmdb.TVEpisodeTranslationData{Name: "Der Winter naht"}},
		},
	}

	server := NewTestServer(t, "/tv/1399/season/1/episode/1/translations", translations)
	defer server.Close()

	client := NewTestClient(t, server.URL)

	result, err := client.TVEpisodes().Translations(context.Background(), 1399, 1, 1)
	require.NoError(t, err)
	require.Len(t, result.Translations, 1)
	assert.Equal(t, "Der Winter naht", result.Translations[0].Data.Name)
}
