package tmdb_test

import (
	"testing"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverMovieFilters_ToValues(t *testing.T) {
	t.Parallel()

	filters := &tmdb.DiscoverMovieFilters{
		Language:              "en-US",
		Region:                "US",
		Page:                  2,
		SortBy:                "popularity.desc",
		IncludeAdult:          true,
		Certification:         "R",
		CertificationCountry:  "US",
		PrimaryReleaseDateGTE: "1990-01-01",
		PrimaryReleaseDateLTE: "1999-12-31",
		VoteAverageGTE:        7.5,
		VoteCountGTE:          1000,
		WithGenres:            []int64{18, 878},
		WithCompanies:         []int64{508},
		WithWatchProviders:    []int64{8, 9},
		WatchRegion:           "US",
		WithOriginalLanguage:  "en",
		WithReleaseTypes:      []int{3, 4},
	}

	values, err := filters.ToValues()
	require.NoError(t, err)

	assert.Equal(t, "en-US", values.Get("language"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "popularity.desc", values.Get("sort_by"))
	assert.Equal(t, "true", values.Get("include_adult"))
	assert.Equal(t, "R", values.Get("certification"))
	assert.Equal(t, "1990-01-01", values.Get("primary_release_date.gte"))
	assert.Equal(t, "7.5", values.Get("vote_average.gte"))
	assert.Equal(t, "1000", values.Get("vote_count.gte"))
	assert.Equal(t, "18,878", values.Get("with_genres"))
	assert.Equal(t, "8,9", values.Get("with_watch_providers"))
	assert.Equal(t, "3|4", values.Get("with_release_type"))
}

func TestDiscoverMovieFilters_ToValues_ZeroValuesOmitted(t *testing.T) {
	t.Parallel()

	values, err := (&tmdb.DiscoverMovieFilters{}).ToValues()
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestDiscoverMovieFilters_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters tmdb.DiscoverMovieFilters
		field   string
	}{
		{
			name:    "unknown sort key",
			filters: tmdb.DiscoverMovieFilters{SortBy: "box_office.desc"},
			field:   "SortBy",
		},
		{
			name:    "page above limit",
			filters: tmdb.DiscoverMovieFilters{Page: 501},
			field:   "Page",
		},
		{
			name:    "malformed date",
			filters: tmdb.DiscoverMovieFilters{PrimaryReleaseDateGTE: "01/01/1990"},
			field:   "PrimaryReleaseDateGTE",
		},
		{
			name:    "vote average above scale",
			filters: tmdb.DiscoverMovieFilters{VoteAverageGTE: 11},
			field:   "VoteAverageGTE",
		},
		{
			name:    "release type out of range",
			filters: tmdb.DiscoverMovieFilters{WithReleaseTypes: []int{7}},
			field:   "WithReleaseTypes",
		},
		{
			name:    "bad region code",
			filters: tmdb.DiscoverMovieFilters{Region: "USA1"},
			field:   "Region",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.filters.ToValues()
			require.Error(t, err)

			var filterErr *tmdb.FilterValidationError
			require.ErrorAs(t, err, &filterErr)
			assert.Equal(t, "DiscoverMovieFilters", filterErr.Filter)
		})
	}
}

func TestDiscoverMovieFilters_Validation_MultipleErrors(t *testing.T) {
	t.Parallel()

	filters := tmdb.DiscoverMovieFilters{
		SortBy: "box_office.desc",
		Page:   501,
	}

	_, err := filters.ToValues()
	require.Error(t, err)

	var filterErr *tmdb.FilterValidationError
	require.ErrorAs(t, err, &filterErr)
	assert.Contains(t, err.Error(), "SortBy")
	assert.Contains(t, err.Error(), "Page")
}

func TestDiscoverTVFilters_ToValues(t *testing.T) {
	t.Parallel()

	filters := &tmdb.DiscoverTVFilters{
		SortBy:               "first_air_date.desc",
		FirstAirDateGTE:      "2016-01-01",
		WithNetworks:         []int64{213},
		Timezone:             "America/New_York",
		ScreenedTheatrically: true,
	}

	values, err := filters.ToValues()
	require.NoError(t, err)

	assert.Equal(t, "first_air_date.desc", values.Get("sort_by"))
	assert.Equal(t, "2016-01-01", values.Get("first_air_date.gte"))
	assert.Equal(t, "213", values.Get("with_networks"))
	assert.Equal(t, "America/New_York", values.Get("timezone"))
	assert.Equal(t, "true", values.Get("screened_theatrically"))
}

func TestDiscoverTVFilters_Validation(t *testing.T) {
	t.Parallel()

	filters := tmdb.DiscoverTVFilters{SortBy: "revenue.desc"}

	_, err := filters.ToValues()
	require.Error(t, err)

	var filterErr *tmdb.FilterValidationError
	require.ErrorAs(t, err, &filterErr)
	assert.Equal(t, "DiscoverTVFilters", filterErr.Filter)
	assert.Equal(t, "SortBy", filterErr.Field)
	assert.Equal(t, "oneof", filterErr.Tag)
}
