package tmdb

import (
	"context"
	"errors"

	"github.com/moviekit/tmdb-client/internal/constants"
)

// PageFunc fetches a single page of results. Any list method on a
// resource client can be adapted to a PageFunc with a closure.
type PageFunc[T any] func(ctx context.Context, params *QueryParams) (*Page[T], error)

// PageIterator walks a paginated list endpoint one item at a time,
// fetching pages lazily.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFunc[T]
	params  *QueryParams
	current *Page[T]
	index   int
	page    int
	done    bool
}

// NewPageIterator creates an iterator over a paginated endpoint. The
// params are copied shallowly; the iterator overrides Page as it walks.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T], params *QueryParams) *PageIterator[T] {
	var paramsCopy QueryParams
	if params != nil {
		paramsCopy = *params
	}

	startPage := paramsCopy.Page
	if startPage < 1 {
		startPage = 1
	}

	return &PageIterator[T]{
		ctx:    ctx,
		fetch:  fetch,
		params: &paramsCopy,
		page:   startPage,
	}
}

// HasNext reports whether another item is available. The first page is
// assumed to exist until a fetch proves otherwise.
func (it *PageIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.current == nil {
		return true
	}

	if it.index < len(it.current.Results) {
		return true
	}

	// The API rejects page numbers above MaxPage even when total_pages
	// reports more.
	return it.current.Page < it.current.TotalPages && it.current.Page < constants.MaxPage
}

// Next returns the next item, fetching the next page when the current one
// is exhausted. It returns ErrNoMoreItems past the end of the list.
func (it *PageIterator[T]) Next() (*T, error) {
	if it.current == nil || it.index >= len(it.current.Results) {
		err := it.fetchNext()
		if err != nil {
			return nil, err
		}
	}

	if it.index >= len(it.current.Results) {
		it.done = true

		return nil, ErrNoMoreItems
	}

	item := &it.current.Results[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining items.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, *item)
	}

	return items, nil
}

func (it *PageIterator[T]) fetchNext() error {
	if it.current != nil {
		if it.current.Page >= it.current.TotalPages || it.current.Page >= constants.MaxPage {
			it.done = true

			return ErrNoMoreItems
		}

		it.page = it.current.Page + 1
	}

	it.params.Page = it.page

	page, err := it.fetch(it.ctx, it.params)
	if err != nil {
		return err
	}

	it.current = page
	it.index = 0

	return nil
}
