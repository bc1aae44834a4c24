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

func TestChangesClient_Movies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/changes", r.URL.Path)
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-08-14", r.URL.Query().Get("end_date"))

		adult := false
		_ = json.NewEncoder(w).Encode(tmdb.Page[tmdb.ChangedEntry]{
			Page:         1,
			Results:      []tmdb.ChangedEntry{{ID: 550, Adult: &adult}},
			TotalPages:   1,
			TotalResults: 1,
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	params := tmdb.NewQueryParams().
		WithExtra("start_date", "2026-08-01").
		WithExtra("end_date", "2026-08-14")

	page, err := client.Changes().Movies(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(550), page.Results[0].ID)
	require.NotNil(t, page.Results[0].Adult)
	assert.False(t, *page.Results[0].Adult)
}

func TestChangesClient_TV(t *testing.T) {
	RunPageTest(t, "tv changes", "/tv/changes",
		[]tmdb.ChangedEntry{{ID: 1399}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.ChangedEntry], error) {
			return c.Changes().TV(ctx, nil)
		})
}

func TestChangesClient_People(t *testing.T) {
	RunPageTest(t, "person changes", "/person/changes",
		[]tmdb.ChangedEntry{{ID: 819}},
		func(c *Client, ctx context.Context) (*tmdb.Page[tmdb.ChangedEntry], error) {
			return c.Changes().People(ctx, nil)
		})
}
