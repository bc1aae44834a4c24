package tmdb

import "context"

// PeopleClient provides access to the person endpoints.
type PeopleClient interface {
	// Get returns the primary details for a person.
	Get(ctx context.Context, personID int64, params *QueryParams) (*PersonDetails, error)
	// MovieCredits returns the movie credits for a person.
	MovieCredits(ctx context.Context, personID int64, params *QueryParams) (*PersonCredits, error)
	// TVCredits returns the TV credits for a person.
	TVCredits(ctx context.Context, personID int64, params *QueryParams) (*PersonCredits, error)
	// CombinedCredits returns movie and TV credits together.
	CombinedCredits(ctx context.Context, personID int64, params *QueryParams) (*PersonCredits, error)
	// ExternalIDs returns the external identifiers for a person.
	ExternalIDs(ctx context.Context, personID int64) (*ExternalIDs, error)
	// Images returns the profile images for a person.
	Images(ctx context.Context, personID int64) (*PersonImages, error)
	// Translations returns the translated fields for a person.
	Translations(ctx context.Context, personID int64) (*TranslationList[PersonTranslationData], error)
	// Popular returns people ordered by popularity.
	Popular(ctx context.Context, params *QueryParams) (*Page[Person], error)
	// Latest returns the most recently created person.
	Latest(ctx context.Context, params *QueryParams) (*PersonDetails, error)
}

// Person represents a person as returned by list and search endpoints.
type Person struct {
	Adult              bool          `json:"adult"                yaml:"adult"`
	Gender             int           `json:"gender"               yaml:"gender"`
	ID                 int64         `json:"id"                   yaml:"id"`
	KnownFor           []MultiResult `json:"known_for"            yaml:"known_for"`
	KnownForDepartment string        `json:"known_for_department" yaml:"known_for_department"`
	Name               string        `json:"name"                 yaml:"name"`
	Popularity         float64       `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string       `json:"profile_path"         yaml:"profile_path"`
}

// PersonDetails represents the full person payload.
type PersonDetails struct {
	Adult              bool     `json:"adult"                yaml:"adult"`
	AlsoKnownAs        []string `json:"also_known_as"        yaml:"also_known_as"`
	Biography          string   `json:"biography"            yaml:"biography"`
	Birthday           *string  `json:"birthday"             yaml:"birthday"`
	Deathday           *string  `json:"deathday"             yaml:"deathday"`
	Gender             int      `json:"gender"               yaml:"gender"`
	Homepage           *string  `json:"homepage"             yaml:"homepage"`
	ID                 int64    `json:"id"                   yaml:"id"`
	IMDbID             *string  `json:"imdb_id"              yaml:"imdb_id"`
	KnownForDepartment string   `json:"known_for_department" yaml:"known_for_department"`
	Name               string   `json:"name"                 yaml:"name"`
	PlaceOfBirth       *string  `json:"place_of_birth"       yaml:"place_of_birth"`
	Popularity         float64  `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string  `json:"profile_path"         yaml:"profile_path"`
}

// PersonCastCredit is one cast credit of a person. Movie fields and TV
// fields are both present; the populated subset depends on MediaType.
type PersonCastCredit struct {
	Adult            bool     `json:"adult"             yaml:"adult"`
	BackdropPath     *string  `json:"backdrop_path"     yaml:"backdrop_path"`
	Character        string   `json:"character"         yaml:"character"`
	CreditID         string   `json:"credit_id"         yaml:"credit_id"`
	EpisodeCount     int      `json:"episode_count"     yaml:"episode_count"`
	FirstAirDate     string   `json:"first_air_date"    yaml:"first_air_date"`
	GenreIDs         []int64  `json:"genre_ids"         yaml:"genre_ids"`
	ID               int64    `json:"id"                yaml:"id"`
	MediaType        string   `json:"media_type"        yaml:"media_type"`
	Name             string   `json:"name"              yaml:"name"`
	OriginCountry    []string `json:"origin_country"    yaml:"origin_country"`
	OriginalLanguage string   `json:"original_language" yaml:"original_language"`
	OriginalName     string   `json:"original_name"     yaml:"original_name"`
	OriginalTitle    string   `json:"original_title"    yaml:"original_title"`
	Overview         string   `json:"overview"          yaml:"overview"`
	Popularity       float64  `json:"popularity"        yaml:"popularity"`
	PosterPath       *string  `json:"poster_path"       yaml:"poster_path"`
	ReleaseDate      string   `json:"release_date"      yaml:"release_date"`
	Title            string   `json:"title"             yaml:"title"`
	Video            bool     `json:"video"             yaml:"video"`
	VoteAverage      float64  `json:"vote_average"      yaml:"vote_average"`
	VoteCount        int64    `json:"vote_count"        yaml:"vote_count"`
}

// PersonCrewCredit is one crew credit of a person.
type PersonCrewCredit struct {
	Adult            bool     `json:"adult"             yaml:"adult"`
	BackdropPath     *string  `json:"backdrop_path"     yaml:"backdrop_path"`
	CreditID         string   `json:"credit_id"         yaml:"credit_id"`
	Department       string   `json:"department"        yaml:"department"`
	EpisodeCount     int      `json:"episode_count"     yaml:"episode_count"`
	FirstAirDate     string   `json:"first_air_date"    yaml:"first_air_date"`
	GenreIDs         []int64  `json:"genre_ids"         yaml:"genre_ids"`
	ID               int64    `json:"id"                yaml:"id"`
	Job              string   `json:"job"               yaml:"job"`
	MediaType        string   `json:"media_type"        yaml:"media_type"`
	Name             string   `json:"name"              yaml:"name"`
	OriginCountry    []string `json:"origin_country"    yaml:"origin_country"`
	OriginalLanguage string   `json:"original_language" yaml:"original_language"`
	OriginalName     string   `json:"original_name"     yaml:"original_name"`
	OriginalTitle    string   `json:"original_title"    yaml:"original_title"`
	Overview         string   `json:"overview"          yaml:"overview"`
	Popularity       float64  `json:"popularity"        yaml:"popularity"`
	PosterPath       *string  `json:"poster_path"       yaml:"poster_path"`
	ReleaseDate      string   `json:"release_date"      yaml:"release_date"`
	Title            string   `json:"title"             yaml:"title"`
	Video            bool     `json:"video"             yaml:"video"`
	VoteAverage      float64  `json:"vote_average"      yaml:"vote_average"`
	VoteCount        int64    `json:"vote_count"        yaml:"vote_count"`
}

// PersonCredits is the envelope for a person's credits.
type PersonCredits struct {
	ID   int64              `json:"id"   yaml:"id"`
	Cast []PersonCastCredit `json:"cast" yaml:"cast"`
	Crew []PersonCrewCredit `json:"crew" yaml:"crew"`
}

// PersonImages is the envelope for a person's profile images.
type PersonImages struct {
	ID       int64   `json:"id"       yaml:"id"`
	Profiles []Image `json:"profiles" yaml:"profiles"`
}

// PersonTranslationData carries the translated fields of a person.
type PersonTranslationData struct {
	Biography string `json:"biography" yaml:"biography"`
}
