package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// SearchClient implements tmdb.SearchClient.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{httpClient: httpClient}
}

func searchQuery(query string, params *tmdb.QueryParams) (url.Values, error) {
	if query == "" {
		return nil, tmdb.ErrEmptyQuery
	}

	values := params.ToValues()
	if values == nil {
		values = url.Values{}
	}

	values.Set("query", query)

	return values, nil
}

// Movies implements tmdb.SearchClient.Movies.
func (c *SearchClient) Movies(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Movie], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/movie", values)
	if err != nil {
		return nil, fmt.Errorf("searching movies: %w", err)
	}

	var page tmdb.Page[tmdb.Movie]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing movie search response: %w", err)
	}

	return &page, nil
}

// TV implements tmdb.SearchClient.TV.
func (c *SearchClient) TV(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.TVShow], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/tv", values)
	if err != nil {
		return nil, fmt.Errorf("searching tv series: %w", err)
	}

	var page tmdb.Page[tmdb.TVShow]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing tv search response: %w", err)
	}

	return &page, nil
}

// People implements tmdb.SearchClient.People.
func (c *SearchClient) People(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Person], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/person", values)
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}

	var page tmdb.Page[tmdb.Person]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing person search response: %w", err)
	}

	return &page, nil
}

// Companies implements tmdb.SearchClient.Companies.
func (c *SearchClient) Companies(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Company], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/company", values)
	if err != nil {
		return nil, fmt.Errorf("searching companies: %w", err)
	}

	var page tmdb.Page[tmdb.Company]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing company search response: %w", err)
	}

	return &page, nil
}

// Collections implements tmdb.SearchClient.Collections.
func (c *SearchClient) Collections(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Collection], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/collection", values)
	if err != nil {
		return nil, fmt.Errorf("searching collections: %w", err)
	}

	var page tmdb.Page[tmdb.Collection]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing collection search response: %w", err)
	}

	return &page, nil
}

// Keywords implements tmdb.SearchClient.Keywords.
func (c *SearchClient) Keywords(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Keyword], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/keyword", values)
	if err != nil {
		return nil, fmt.Errorf("searching keywords: %w", err)
	}

	var page tmdb.Page[tmdb.Keyword]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing keyword search response: %w", err)
	}

	return &page, nil
}

// Multi implements tmdb.SearchClient.Multi.
func (c *SearchClient) Multi(ctx context.Context, query string, params *tmdb.QueryParams) (*tmdb.Page[tmdb.MultiResult], error) {
	values, err := searchQuery(query, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/search/multi", values)
	if err != nil {
		return nil, fmt.Errorf("searching multi: %w", err)
	}

	var page tmdb.Page[tmdb.MultiResult]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing multi search response: %w", err)
	}

	return &page, nil
}
