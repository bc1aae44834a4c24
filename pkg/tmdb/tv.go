package tmdb

import "context"

// TVClient provides access to the TV series endpoints.
type TVClient interface {
	// Get returns the primary details for a TV series.
	Get(ctx context.Context, seriesID int64, params *QueryParams) (*TVShowDetails, error)
	// AiringToday returns series with an episode airing today.
	AiringToday(ctx context.Context, params *QueryParams) (*Page[TVShow], error)
	// OnTheAir returns series with an episode airing within the next week.
	OnTheAir(ctx context.Context, params *QueryParams) (*Page[TVShow], error)
	// Popular returns series ordered by popularity.
	Popular(ctx context.Context, params *QueryParams) (*Page[TVShow], error)
	// TopRated returns series ordered by rating.
	TopRated(ctx context.Context, params *QueryParams) (*Page[TVShow], error)
	// Latest returns the most recently created series.
	Latest(ctx context.Context, params *QueryParams) (*TVShowDetails, error)
	// AlternativeTitles returns the alternative titles for a series.
	AlternativeTitles(ctx context.Context, seriesID int64, params *QueryParams) (*TVAlternativeTitles, error)
	// ContentRatings returns content ratings per country.
	ContentRatings(ctx context.Context, seriesID int64) (*TVContentRatings, error)
	// Credits returns the current-season cast and crew for a series.
	Credits(ctx context.Context, seriesID int64, params *QueryParams) (*Credits, error)
	// AggregateCredits returns all-season aggregated cast and crew.
	AggregateCredits(ctx context.Context, seriesID int64, params *QueryParams) (*AggregateCredits, error)
	// ExternalIDs returns the external identifiers for a series.
	ExternalIDs(ctx context.Context, seriesID int64) (*ExternalIDs, error)
	// Images returns the backdrops, posters and logos for a series.
	Images(ctx context.Context, seriesID int64, params *QueryParams) (*TVImages, error)
	// Keywords returns the keywords for a series.
	Keywords(ctx context.Context, seriesID int64) (*TVKeywords, error)
	// Recommendations returns recommended series for a series.
	Recommendations(ctx context.Context, seriesID int64, params *QueryParams) (*Page[TVShow], error)
	// Reviews returns user reviews for a series.
	Reviews(ctx context.Context, seriesID int64, params *QueryParams) (*Page[Review], error)
	// Similar returns series similar to a series.
	Similar(ctx context.Context, seriesID int64, params *QueryParams) (*Page[TVShow], error)
	// Translations returns the translated fields for a series.
	Translations(ctx context.Context, seriesID int64) (*TranslationList[TVTranslationData], error)
	// Videos returns trailers and other videos for a series.
	Videos(ctx context.Context, seriesID int64, params *QueryParams) (*VideoList, error)
	// WatchProviders returns streaming availability per country.
	WatchProviders(ctx context.Context, seriesID int64) (*WatchProviderResults, error)
}

// TVShow represents a TV series as returned by list and search endpoints.
type TVShow struct {
	Adult            bool     `json:"adult"             yaml:"adult"`
	BackdropPath     *string  `json:"backdrop_path"     yaml:"backdrop_path"`
	FirstAirDate     string   `json:"first_air_date"    yaml:"first_air_date"`
	GenreIDs         []int64  `json:"genre_ids"         yaml:"genre_ids"`
	ID               int64    `json:"id"                yaml:"id"`
	Name             string   `json:"name"              yaml:"name"`
	OriginCountry    []string `json:"origin_country"    yaml:"origin_country"`
	OriginalLanguage string   `json:"original_language" yaml:"original_language"`
	OriginalName     string   `json:"original_name"     yaml:"original_name"`
	Overview         string   `json:"overview"          yaml:"overview"`
	Popularity       float64  `json:"popularity"        yaml:"popularity"`
	PosterPath       *string  `json:"poster_path"       yaml:"poster_path"`
	VoteAverage      float64  `json:"vote_average"      yaml:"vote_average"`
	VoteCount        int64    `json:"vote_count"        yaml:"vote_count"`
}

// TVShowDetails represents the full TV series details payload.
type TVShowDetails struct {
	Adult               bool                `json:"adult"                yaml:"adult"`
	BackdropPath        *string             `json:"backdrop_path"        yaml:"backdrop_path"`
	CreatedBy           []TVShowCreator     `json:"created_by"           yaml:"created_by"`
	EpisodeRunTime      []int               `json:"episode_run_time"     yaml:"episode_run_time"`
	FirstAirDate        string              `json:"first_air_date"       yaml:"first_air_date"`
	Genres              []Genre             `json:"genres"               yaml:"genres"`
	Homepage            string              `json:"homepage"             yaml:"homepage"`
	ID                  int64               `json:"id"                   yaml:"id"`
	InProduction        bool                `json:"in_production"        yaml:"in_production"`
	Languages           []string            `json:"languages"            yaml:"languages"`
	LastAirDate         string              `json:"last_air_date"        yaml:"last_air_date"`
	LastEpisodeToAir    *TVEpisode          `json:"last_episode_to_air"  yaml:"last_episode_to_air"`
	Name                string              `json:"name"                 yaml:"name"`
	NextEpisodeToAir    *TVEpisode          `json:"next_episode_to_air"  yaml:"next_episode_to_air"`
	Networks            []Network           `json:"networks"             yaml:"networks"`
	NumberOfEpisodes    int                 `json:"number_of_episodes"   yaml:"number_of_episodes"`
	NumberOfSeasons     int                 `json:"number_of_seasons"    yaml:"number_of_seasons"`
	OriginCountry       []string            `json:"origin_country"       yaml:"origin_country"`
	OriginalLanguage    string              `json:"original_language"    yaml:"original_language"`
	OriginalName        string              `json:"original_name"        yaml:"original_name"`
	Overview            string              `json:"overview"             yaml:"overview"`
	Popularity          float64             `json:"popularity"           yaml:"popularity"`
	PosterPath          *string             `json:"poster_path"          yaml:"poster_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies" yaml:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries" yaml:"production_countries"`
	Seasons             []TVSeason          `json:"seasons"              yaml:"seasons"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"     yaml:"spoken_languages"`
	Status              string              `json:"status"               yaml:"status"`
	Tagline             string              `json:"tagline"              yaml:"tagline"`
	Type                string              `json:"type"                 yaml:"type"`
	VoteAverage         float64             `json:"vote_average"         yaml:"vote_average"`
	VoteCount           int64               `json:"vote_count"           yaml:"vote_count"`
}

// TVShowCreator describes a series creator.
type TVShowCreator struct {
	ID          int64   `json:"id"           yaml:"id"`
	CreditID    string  `json:"credit_id"    yaml:"credit_id"`
	Name        string  `json:"name"         yaml:"name"`
	Gender      int     `json:"gender"       yaml:"gender"`
	ProfilePath *string `json:"profile_path" yaml:"profile_path"`
}

// TVAlternativeTitles is the envelope for TV alternative titles.
type TVAlternativeTitles struct {
	ID      int64              `json:"id"      yaml:"id"`
	Results []AlternativeTitle `json:"results" yaml:"results"`
}

// TVContentRating is a content rating within a country.
type TVContentRating struct {
	Descriptors []string `json:"descriptors" yaml:"descriptors"`
	ISO31661    string   `json:"iso_3166_1"  yaml:"iso_3166_1"`
	Rating      string   `json:"rating"      yaml:"rating"`
}

// TVContentRatings is the envelope for TV content ratings.
type TVContentRatings struct {
	ID      int64             `json:"id"      yaml:"id"`
	Results []TVContentRating `json:"results" yaml:"results"`
}

// TVImages is the envelope for TV series images.
type TVImages struct {
	ID        int64   `json:"id"        yaml:"id"`
	Backdrops []Image `json:"backdrops" yaml:"backdrops"`
	Posters   []Image `json:"posters"   yaml:"posters"`
	Logos     []Image `json:"logos"     yaml:"logos"`
}

// TVKeywords is the envelope for TV series keywords.
type TVKeywords struct {
	ID      int64     `json:"id"      yaml:"id"`
	Results []Keyword `json:"results" yaml:"results"`
}

// AggregateCastRole is a single role within an aggregated cast credit.
type AggregateCastRole struct {
	CreditID     string `json:"credit_id"     yaml:"credit_id"`
	Character    string `json:"character"     yaml:"character"`
	EpisodeCount int    `json:"episode_count" yaml:"episode_count"`
}

// AggregateCastMember is a cast member aggregated across all seasons.
type AggregateCastMember struct {
	Adult              bool                `json:"adult"                yaml:"adult"`
	Gender             int                 `json:"gender"               yaml:"gender"`
	ID                 int64               `json:"id"                   yaml:"id"`
	KnownForDepartment string              `json:"known_for_department" yaml:"known_for_department"`
	Name               string              `json:"name"                 yaml:"name"`
	OriginalName       string              `json:"original_name"        yaml:"original_name"`
	Popularity         float64             `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string             `json:"profile_path"         yaml:"profile_path"`
	Roles              []AggregateCastRole `json:"roles"                yaml:"roles"`
	TotalEpisodeCount  int                 `json:"total_episode_count"  yaml:"total_episode_count"`
	Order              int                 `json:"order"                yaml:"order"`
}

// AggregateCrewJob is a single job within an aggregated crew credit.
type AggregateCrewJob struct {
	CreditID     string `json:"credit_id"     yaml:"credit_id"`
	Job          string `json:"job"           yaml:"job"`
	EpisodeCount int    `json:"episode_count" yaml:"episode_count"`
}

// AggregateCrewMember is a crew member aggregated across all seasons.
type AggregateCrewMember struct {
	Adult              bool               `json:"adult"                yaml:"adult"`
	Gender             int                `json:"gender"               yaml:"gender"`
	ID                 int64              `json:"id"                   yaml:"id"`
	KnownForDepartment string             `json:"known_for_department" yaml:"known_for_department"`
	Name               string             `json:"name"                 yaml:"name"`
	OriginalName       string             `json:"original_name"        yaml:"original_name"`
	Popularity         float64            `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string            `json:"profile_path"         yaml:"profile_path"`
	Jobs               []AggregateCrewJob `json:"jobs"                 yaml:"jobs"`
	Department         string             `json:"department"           yaml:"department"`
	TotalEpisodeCount  int                `json:"total_episode_count"  yaml:"total_episode_count"`
}

// AggregateCredits is the envelope for aggregated TV credits.
type AggregateCredits struct {
	ID   int64                 `json:"id"   yaml:"id"`
	Cast []AggregateCastMember `json:"cast" yaml:"cast"`
	Crew []AggregateCrewMember `json:"crew" yaml:"crew"`
}

// TVTranslationData carries the translated fields of a TV series.
type TVTranslationData struct {
	Homepage string `json:"homepage" yaml:"homepage"`
	Name     string `json:"name"     yaml:"name"`
	Overview string `json:"overview" yaml:"overview"`
	Tagline  string `json:"tagline"  yaml:"tagline"`
}
