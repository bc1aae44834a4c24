package tmdb

import "context"

// MoviesClient provides access to the movie endpoints.
type MoviesClient interface {
	// Get returns the primary details for a movie.
	Get(ctx context.Context, movieID int64, params *QueryParams) (*MovieDetails, error)
	// AlternativeTitles returns the alternative titles for a movie.
	AlternativeTitles(ctx context.Context, movieID int64, params *QueryParams) (*MovieAlternativeTitles, error)
	// Credits returns the cast and crew for a movie.
	Credits(ctx context.Context, movieID int64, params *QueryParams) (*Credits, error)
	// ExternalIDs returns the external identifiers for a movie.
	ExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error)
	// Images returns the backdrops, posters and logos for a movie.
	Images(ctx context.Context, movieID int64, params *QueryParams) (*MovieImages, error)
	// Keywords returns the plot keywords for a movie.
	Keywords(ctx context.Context, movieID int64) (*MovieKeywords, error)
	// Latest returns the most recently created movie.
	Latest(ctx context.Context, params *QueryParams) (*MovieDetails, error)
	// Lists returns the public lists a movie belongs to.
	Lists(ctx context.Context, movieID int64, params *QueryParams) (*Page[MovieList], error)
	// NowPlaying returns movies currently in theatres.
	NowPlaying(ctx context.Context, params *QueryParams) (*DatedPage[Movie], error)
	// Popular returns movies ordered by popularity.
	Popular(ctx context.Context, params *QueryParams) (*Page[Movie], error)
	// Recommendations returns recommended movies for a movie.
	Recommendations(ctx context.Context, movieID int64, params *QueryParams) (*Page[Movie], error)
	// ReleaseDates returns release dates and certifications per country.
	ReleaseDates(ctx context.Context, movieID int64) (*MovieReleaseDates, error)
	// Reviews returns user reviews for a movie.
	Reviews(ctx context.Context, movieID int64, params *QueryParams) (*Page[Review], error)
	// Similar returns movies similar to a movie.
	Similar(ctx context.Context, movieID int64, params *QueryParams) (*Page[Movie], error)
	// TopRated returns movies ordered by rating.
	TopRated(ctx context.Context, params *QueryParams) (*Page[Movie], error)
	// Translations returns the translated fields for a movie.
	Translations(ctx context.Context, movieID int64) (*TranslationList[MovieTranslationData], error)
	// Upcoming returns movies with upcoming releases.
	Upcoming(ctx context.Context, params *QueryParams) (*DatedPage[Movie], error)
	// Videos returns trailers and other videos for a movie.
	Videos(ctx context.Context, movieID int64, params *QueryParams) (*VideoList, error)
	// WatchProviders returns streaming availability per country.
	WatchProviders(ctx context.Context, movieID int64) (*WatchProviderResults, error)
}

// Movie represents a movie as returned by list and search endpoints.
type Movie struct {
	Adult            bool    `json:"adult"             yaml:"adult"`
	BackdropPath     *string `json:"backdrop_path"     yaml:"backdrop_path"`
	GenreIDs         []int64 `json:"genre_ids"         yaml:"genre_ids"`
	ID               int64   `json:"id"                yaml:"id"`
	OriginalLanguage string  `json:"original_language" yaml:"original_language"`
	OriginalTitle    string  `json:"original_title"    yaml:"original_title"`
	Overview         string  `json:"overview"          yaml:"overview"`
	Popularity       float64 `json:"popularity"        yaml:"popularity"`
	PosterPath       *string `json:"poster_path"       yaml:"poster_path"`
	ReleaseDate      string  `json:"release_date"      yaml:"release_date"`
	Title            string  `json:"title"             yaml:"title"`
	Video            bool    `json:"video"             yaml:"video"`
	VoteAverage      float64 `json:"vote_average"      yaml:"vote_average"`
	VoteCount        int64   `json:"vote_count"        yaml:"vote_count"`
}

// MovieDetails represents the full movie details payload.
type MovieDetails struct {
	Adult               bool                `json:"adult"                 yaml:"adult"`
	BackdropPath        *string             `json:"backdrop_path"         yaml:"backdrop_path"`
	BelongsToCollection *Collection         `json:"belongs_to_collection" yaml:"belongs_to_collection"`
	Budget              int64               `json:"budget"                yaml:"budget"`
	Genres              []Genre             `json:"genres"                yaml:"genres"`
	Homepage            *string             `json:"homepage"              yaml:"homepage"`
	ID                  int64               `json:"id"                    yaml:"id"`
	IMDbID              *string             `json:"imdb_id"               yaml:"imdb_id"`
	OriginalLanguage    string              `json:"original_language"     yaml:"original_language"`
	OriginalTitle       string              `json:"original_title"        yaml:"original_title"`
	Overview            string              `json:"overview"              yaml:"overview"`
	Popularity          float64             `json:"popularity"            yaml:"popularity"`
	PosterPath          *string             `json:"poster_path"           yaml:"poster_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies"  yaml:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"  yaml:"production_countries"`
	ReleaseDate         string              `json:"release_date"          yaml:"release_date"`
	Revenue             int64               `json:"revenue"               yaml:"revenue"`
	Runtime             int                 `json:"runtime"               yaml:"runtime"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"      yaml:"spoken_languages"`
	Status              string              `json:"status"                yaml:"status"`
	Tagline             *string             `json:"tagline"               yaml:"tagline"`
	Title               string              `json:"title"                 yaml:"title"`
	Video               bool                `json:"video"                 yaml:"video"`
	VoteAverage         float64             `json:"vote_average"          yaml:"vote_average"`
	VoteCount           int64               `json:"vote_count"            yaml:"vote_count"`
}

// MovieAlternativeTitles is the envelope for movie alternative titles.
type MovieAlternativeTitles struct {
	ID     int64              `json:"id"     yaml:"id"`
	Titles []AlternativeTitle `json:"titles" yaml:"titles"`
}

// MovieImages is the envelope for movie images.
type MovieImages struct {
	ID        int64   `json:"id"        yaml:"id"`
	Backdrops []Image `json:"backdrops" yaml:"backdrops"`
	Posters   []Image `json:"posters"   yaml:"posters"`
	Logos     []Image `json:"logos"     yaml:"logos"`
}

// MovieKeywords is the envelope for movie keywords.
type MovieKeywords struct {
	ID       int64     `json:"id"       yaml:"id"`
	Keywords []Keyword `json:"keywords" yaml:"keywords"`
}

// MovieList describes a public list a movie is a member of.
type MovieList struct {
	Description   string  `json:"description"    yaml:"description"`
	FavoriteCount int64   `json:"favorite_count" yaml:"favorite_count"`
	ID            int64   `json:"id"             yaml:"id"`
	ItemCount     int64   `json:"item_count"     yaml:"item_count"`
	ISO6391       string  `json:"iso_639_1"      yaml:"iso_639_1"`
	ListType      string  `json:"list_type"      yaml:"list_type"`
	Name          string  `json:"name"           yaml:"name"`
	PosterPath    *string `json:"poster_path"    yaml:"poster_path"`
}

// ReleaseDate is a single release event within a country.
type ReleaseDate struct {
	Certification string   `json:"certification" yaml:"certification"`
	Descriptors   []string `json:"descriptors"   yaml:"descriptors"`
	ISO6391       string   `json:"iso_639_1"     yaml:"iso_639_1"`
	Note          string   `json:"note"          yaml:"note"`
	ReleaseDate   string   `json:"release_date"  yaml:"release_date"`
	Type          int      `json:"type"          yaml:"type"`
}

// CountryReleaseDates groups release events by country.
type CountryReleaseDates struct {
	ISO31661     string        `json:"iso_3166_1"    yaml:"iso_3166_1"`
	ReleaseDates []ReleaseDate `json:"release_dates" yaml:"release_dates"`
}

// MovieReleaseDates is the envelope for movie release dates.
type MovieReleaseDates struct {
	ID      int64                 `json:"id"      yaml:"id"`
	Results []CountryReleaseDates `json:"results" yaml:"results"`
}

// MovieTranslationData carries the translated fields of a movie.
type MovieTranslationData struct {
	Homepage string `json:"homepage" yaml:"homepage"`
	Overview string `json:"overview" yaml:"overview"`
	Runtime  int    `json:"runtime"  yaml:"runtime"`
	Tagline  string `json:"tagline"  yaml:"tagline"`
	Title    string `json:"title"    yaml:"title"`
}
