package tmdb

import "context"

// SearchClient provides access to the search endpoints. Every method
// requires a non-empty query.
type SearchClient interface {
	// Movies searches for movies by title.
	Movies(ctx context.Context, query string, params *QueryParams) (*Page[Movie], error)
	// TV searches for TV series by name.
	TV(ctx context.Context, query string, params *QueryParams) (*Page[TVShow], error)
	// People searches for people by name.
	People(ctx context.Context, query string, params *QueryParams) (*Page[Person], error)
	// Companies searches for companies by name.
	Companies(ctx context.Context, query string, params *QueryParams) (*Page[Company], error)
	// Collections searches for collections by name.
	Collections(ctx context.Context, query string, params *QueryParams) (*Page[Collection], error)
	// Keywords searches for plot keywords.
	Keywords(ctx context.Context, query string, params *QueryParams) (*Page[Keyword], error)
	// Multi searches movies, TV series and people in a single request.
	Multi(ctx context.Context, query string, params *QueryParams) (*Page[MultiResult], error)
}

// MultiResult is a single multi-search or trending entry. MediaType
// discriminates which of the movie, TV or person fields are populated.
type MultiResult struct {
	MediaType string `json:"media_type" yaml:"media_type"`

	Adult              bool     `json:"adult"                yaml:"adult"`
	BackdropPath       *string  `json:"backdrop_path"        yaml:"backdrop_path"`
	FirstAirDate       string   `json:"first_air_date"       yaml:"first_air_date"`
	GenreIDs           []int64  `json:"genre_ids"            yaml:"genre_ids"`
	Gender             int      `json:"gender"               yaml:"gender"`
	ID                 int64    `json:"id"                   yaml:"id"`
	KnownForDepartment string   `json:"known_for_department" yaml:"known_for_department"`
	Name               string   `json:"name"                 yaml:"name"`
	OriginCountry      []string `json:"origin_country"       yaml:"origin_country"`
	OriginalLanguage   string   `json:"original_language"    yaml:"original_language"`
	OriginalName       string   `json:"original_name"        yaml:"original_name"`
	OriginalTitle      string   `json:"original_title"       yaml:"original_title"`
	Overview           string   `json:"overview"             yaml:"overview"`
	Popularity         float64  `json:"popularity"           yaml:"popularity"`
	PosterPath         *string  `json:"poster_path"          yaml:"poster_path"`
	ProfilePath        *string  `json:"profile_path"         yaml:"profile_path"`
	ReleaseDate        string   `json:"release_date"         yaml:"release_date"`
	Title              string   `json:"title"                yaml:"title"`
	Video              bool     `json:"video"                yaml:"video"`
	VoteAverage        float64  `json:"vote_average"         yaml:"vote_average"`
	VoteCount          int64    `json:"vote_count"           yaml:"vote_count"`
}

// Media type discriminators used by multi search, trending and find.
const (
	MediaTypeMovie  = "movie"
	MediaTypeTV     = "tv"
	MediaTypePerson = "person"
)
