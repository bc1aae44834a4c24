package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// DiscoverClient provides access to the discover endpoints.
type DiscoverClient interface {
	// Movies returns movies matching the filters.
	Movies(ctx context.Context, filters *DiscoverMovieFilters) (*Page[Movie], error)
	// TV returns TV series matching the filters.
	TV(ctx context.Context, filters *DiscoverTVFilters) (*Page[TVShow], error)
}

// FilterValidationError reports a single invalid filter field.
type FilterValidationError struct {
	Filter   string
	Field    string
	Tag      string
	Value    interface{}
	Expected string
}

// Error implements the error interface.
func (e *FilterValidationError) Error() string {
	return fmt.Sprintf(
		"invalid value %v for %s.%s (%s:%s)",
		e.Value, e.Filter, e.Field, e.Tag, e.Expected,
	)
}

func validateFilters(name string, filters interface{}) error {
	err := validate.Struct(filters)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating %s: %w", name, err)
	}

	filterErrors := make([]error, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		filterErrors = append(filterErrors, &FilterValidationError{
			Filter:   name,
			Field:    fieldErr.Field(),
			Tag:      fieldErr.ActualTag(),
			Value:    fieldErr.Value(),
			Expected: fieldErr.Param(),
		})
	}

	return errors.Join(filterErrors...)
}

// DiscoverMovieFilters holds the filters for discover/movie. The zero
// value of a field omits it from the query.
type DiscoverMovieFilters struct {
	Language              string  `validate:"omitempty,bcp47_language_tag"`
	Region                string  `validate:"omitempty,iso3166_1_alpha2"`
	Page                  int     `validate:"omitempty,min=1,max=500"`
	SortBy                string  `validate:"omitempty,oneof=original_title.asc original_title.desc popularity.asc popularity.desc primary_release_date.asc primary_release_date.desc revenue.asc revenue.desc title.asc title.desc vote_average.asc vote_average.desc vote_count.asc vote_count.desc"`
	IncludeAdult          bool    `validate:"omitempty"`
	IncludeVideo          bool    `validate:"omitempty"`
	Certification         string  `validate:"omitempty"`
	CertificationCountry  string  `validate:"omitempty,iso3166_1_alpha2"`
	PrimaryReleaseYear    int     `validate:"omitempty,min=1874"`
	PrimaryReleaseDateGTE string  `validate:"omitempty,datetime=2006-01-02"`
	PrimaryReleaseDateLTE string  `validate:"omitempty,datetime=2006-01-02"`
	VoteAverageGTE        float64 `validate:"omitempty,min=0,max=10"`
	VoteAverageLTE        float64 `validate:"omitempty,min=0,max=10"`
	VoteCountGTE          int     `validate:"omitempty,min=0"`
	WithRuntimeGTE        int     `validate:"omitempty,min=0"`
	WithRuntimeLTE        int     `validate:"omitempty,min=0"`
	WithGenres            []int64 `validate:"omitempty"`
	WithoutGenres         []int64 `validate:"omitempty"`
	WithCompanies         []int64 `validate:"omitempty"`
	WithKeywords          []int64 `validate:"omitempty"`
	WithWatchProviders    []int64 `validate:"omitempty"`
	WatchRegion           string  `validate:"omitempty,iso3166_1_alpha2"`
	WithOriginalLanguage  string  `validate:"omitempty"`
	WithReleaseTypes      []int   `validate:"omitempty,dive,min=1,max=6"`
}

// ToValues validates the filters and converts them to url.Values.
func (f *DiscoverMovieFilters) ToValues() (url.Values, error) {
	err := validateFilters("DiscoverMovieFilters", f)
	if err != nil {
		return nil, err
	}

	values := url.Values{}

	setString(values, "language", f.Language)
	setString(values, "region", f.Region)
	setInt(values, "page", f.Page)
	setString(values, "sort_by", f.SortBy)
	setBool(values, "include_adult", f.IncludeAdult)
	setBool(values, "include_video", f.IncludeVideo)
	setString(values, "certification", f.Certification)
	setString(values, "certification_country", f.CertificationCountry)
	setInt(values, "primary_release_year", f.PrimaryReleaseYear)
	setString(values, "primary_release_date.gte", f.PrimaryReleaseDateGTE)
	setString(values, "primary_release_date.lte", f.PrimaryReleaseDateLTE)
	setFloat(values, "vote_average.gte", f.VoteAverageGTE)
	setFloat(values, "vote_average.lte", f.VoteAverageLTE)
	setInt(values, "vote_count.gte", f.VoteCountGTE)
	setInt(values, "with_runtime.gte", f.WithRuntimeGTE)
	setInt(values, "with_runtime.lte", f.WithRuntimeLTE)
	setInt64List(values, "with_genres", f.WithGenres)
	setInt64List(values, "without_genres", f.WithoutGenres)
	setInt64List(values, "with_companies", f.WithCompanies)
	setInt64List(values, "with_keywords", f.WithKeywords)
	setInt64List(values, "with_watch_providers", f.WithWatchProviders)
	setString(values, "watch_region", f.WatchRegion)
	setString(values, "with_original_language", f.WithOriginalLanguage)
	setIntList(values, "with_release_type", f.WithReleaseTypes)

	return values, nil
}

// DiscoverTVFilters holds the filters for discover/tv. The zero value of
// a field omits it from the query.
type DiscoverTVFilters struct {
	Language             string  `validate:"omitempty,bcp47_language_tag"`
	Page                 int     `validate:"omitempty,min=1,max=500"`
	SortBy               string  `validate:"omitempty,oneof=first_air_date.asc first_air_date.desc name.asc name.desc original_name.asc original_name.desc popularity.asc popularity.desc vote_average.asc vote_average.desc vote_count.asc vote_count.desc"`
	IncludeAdult         bool    `validate:"omitempty"`
	AirDateGTE           string  `validate:"omitempty,datetime=2006-01-02"`
	AirDateLTE           string  `validate:"omitempty,datetime=2006-01-02"`
	FirstAirDateYear     int     `validate:"omitempty,min=1874"`
	FirstAirDateGTE      string  `validate:"omitempty,datetime=2006-01-02"`
	FirstAirDateLTE      string  `validate:"omitempty,datetime=2006-01-02"`
	VoteAverageGTE       float64 `validate:"omitempty,min=0,max=10"`
	VoteCountGTE         int     `validate:"omitempty,min=0"`
	WithRuntimeGTE       int     `validate:"omitempty,min=0"`
	WithRuntimeLTE       int     `validate:"omitempty,min=0"`
	WithGenres           []int64 `validate:"omitempty"`
	WithoutGenres        []int64 `validate:"omitempty"`
	WithNetworks         []int64 `validate:"omitempty"`
	WithKeywords         []int64 `validate:"omitempty"`
	WithWatchProviders   []int64 `validate:"omitempty"`
	WatchRegion          string  `validate:"omitempty,iso3166_1_alpha2"`
	WithOriginalLanguage string  `validate:"omitempty"`
	Timezone             string  `validate:"omitempty"`
	ScreenedTheatrically bool    `validate:"omitempty"`
}

// ToValues validates the filters and converts them to url.Values.
func (f *DiscoverTVFilters) ToValues() (url.Values, error) {
	err := validateFilters("DiscoverTVFilters", f)
	if err != nil {
		return nil, err
	}

	values := url.Values{}

	setString(values, "language", f.Language)
	setInt(values, "page", f.Page)
	setString(values, "sort_by", f.SortBy)
	setBool(values, "include_adult", f.IncludeAdult)
	setString(values, "air_date.gte", f.AirDateGTE)
	setString(values, "air_date.lte", f.AirDateLTE)
	setInt(values, "first_air_date_year", f.FirstAirDateYear)
	setString(values, "first_air_date.gte", f.FirstAirDateGTE)
	setString(values, "first_air_date.lte", f.FirstAirDateLTE)
	setFloat(values, "vote_average.gte", f.VoteAverageGTE)
	setInt(values, "vote_count.gte", f.VoteCountGTE)
	setInt(values, "with_runtime.gte", f.WithRuntimeGTE)
	setInt(values, "with_runtime.lte", f.WithRuntimeLTE)
	setInt64List(values, "with_genres", f.WithGenres)
	setInt64List(values, "without_genres", f.WithoutGenres)
	setInt64List(values, "with_networks", f.WithNetworks)
	setInt64List(values, "with_keywords", f.WithKeywords)
	setInt64List(values, "with_watch_providers", f.WithWatchProviders)
	setString(values, "watch_region", f.WatchRegion)
	setString(values, "with_original_language", f.WithOriginalLanguage)
	setString(values, "timezone", f.Timezone)
	setBool(values, "screened_theatrically", f.ScreenedTheatrically)

	return values, nil
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setInt(values url.Values, key string, value int) {
	if value != 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

func setFloat(values url.Values, key string, value float64) {
	if value != 0 {
		values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
}

func setBool(values url.Values, key string, value bool) {
	if value {
		values.Set(key, "true")
	}
}

func setInt64List(values url.Values, key string, list []int64) {
	if len(list) == 0 {
		return
	}

	parts := make([]string, 0, len(list))
	for _, id := range list {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	values.Set(key, strings.Join(parts, ","))
}

func setIntList(values url.Values, key string, list []int) {
	if len(list) == 0 {
		return
	}

	parts := make([]string, 0, len(list))
	for _, v := range list {
		parts = append(parts, strconv.Itoa(v))
	}

	values.Set(key, strings.Join(parts, "|"))
}
