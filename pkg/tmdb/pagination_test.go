package tmdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedFetch(pages map[int][]string, totalPages int, calls *int) tmdb.PageFunc[string] {
	return func(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[string], error) {
		*calls++

		return &tmdb.Page[string]{
			Page:         params.Page,
			Results:      pages[params.Page],
			TotalPages:   totalPages,
			TotalResults: 5,
		}, nil
	}
}

func TestPageIterator_Next(t *testing.T) {
	t.Parallel()

	calls := 0
	pages := map[int][]string{
		1: {"a", "b", "c"},
		2: {"d", "e"},
	}

	it := tmdb.NewPageIterator(context.Background(), pagedFetch(pages, 2, &calls), nil)

	var items []string

	for it.HasNext() {
		item, err := it.Next()
		if errors.Is(err, tmdb.ErrNoMoreItems) {
			break
		}

		require.NoError(t, err)
		items = append(items, *item)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	assert.Equal(t, 2, calls)

	_, err := it.Next()
	require.ErrorIs(t, err, tmdb.ErrNoMoreItems)
	assert.False(t, it.HasNext())
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	calls := 0
	pages := map[int][]string{
		1: {"a", "b"},
		2: {"c"},
	}

	it := tmdb.NewPageIterator(context.Background(), pagedFetch(pages, 2, &calls), nil)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestPageIterator_StartPage(t *testing.T) {
	t.Parallel()

	calls := 0
	pages := map[int][]string{
		2: {"c"},
	}

	params := tmdb.NewQueryParams().WithPage(2)
	it := tmdb.NewPageIterator(context.Background(), pagedFetch(pages, 2, &calls), params)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, items)
	assert.Equal(t, 1, calls)

	// The caller's params stay untouched.
	assert.Equal(t, 2, params.Page)
}

func TestPageIterator_StopsAtPageCap(t *testing.T) {
	t.Parallel()

	calls := 0
	pages := map[int][]string{
		500: {"x"},
		501: {"never served"},
	}

	// total_pages can exceed the cap; the API refuses pages beyond 500.
	params := tmdb.NewQueryParams().WithPage(500)
	it := tmdb.NewPageIterator(context.Background(), pagedFetch(pages, 600, &calls), params)

	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", *item)

	assert.False(t, it.HasNext())

	_, err = it.Next()
	require.ErrorIs(t, err, tmdb.ErrNoMoreItems)
	assert.Equal(t, 1, calls)
}

func TestPageIterator_EmptyList(t *testing.T) {
	t.Parallel()

	calls := 0
	it := tmdb.NewPageIterator(context.Background(), pagedFetch(map[int][]string{}, 0, &calls), nil)

	items, err := it.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPageIterator_FetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("transport down")
	fetch := func(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[string], error) {
		return nil, fetchErr
	}

	it := tmdb.NewPageIterator(context.Background(), fetch, nil)

	_, err := it.Next()
	require.ErrorIs(t, err, fetchErr)

	_, err = it.All()
	require.ErrorIs(t, err, fetchErr)
}
