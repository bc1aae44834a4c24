package tmdb

import (
	"bytes"
	"encoding/json"
)

// Page represents the standard TMDB paginated list envelope.
type Page[T any] struct {
	Page         int `json:"page"          yaml:"page"`
	Results      []T `json:"results"       yaml:"results"`
	TotalPages   int `json:"total_pages"   yaml:"total_pages"`
	TotalResults int `json:"total_results" yaml:"total_results"`
}

// DateRange bounds the release dates covered by a dated list.
type DateRange struct {
	Maximum string `json:"maximum" yaml:"maximum"`
	Minimum string `json:"minimum" yaml:"minimum"`
}

// DatedPage is the list envelope used by endpoints that scope results to a
// date window (now playing, upcoming, airing today, on the air).
type DatedPage[T any] struct {
	Page[T]

	Dates DateRange `json:"dates" yaml:"dates"`
}

// NullableString decodes a JSON string, mapping the empty string to nil.
// TMDB serves "" for several optional fields where null would be expected
// (for example the alternative-name "type").
type NullableString struct {
	Value *string
}

var nullLiteral = []byte("null")

// UnmarshalJSON implements json.Unmarshaler.
func (s *NullableString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		s.Value = nil

		return nil
	}

	var str string

	err := json.Unmarshal(data, &str)
	if err != nil {
		return err
	}

	if str == "" {
		s.Value = nil

		return nil
	}

	s.Value = &str

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s NullableString) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return nullLiteral, nil
	}

	return json.Marshal(*s.Value)
}

// String returns the underlying value or the empty string.
func (s NullableString) String() string {
	if s.Value == nil {
		return ""
	}

	return *s.Value
}

// Image represents a single image entry (poster, backdrop, logo, profile
// or still).
type Image struct {
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
	FilePath    string  `json:"file_path"    yaml:"file_path"`
	Height      int     `json:"height"       yaml:"height"`
	Width       int     `json:"width"        yaml:"width"`
	ISO6391     *string `json:"iso_639_1"    yaml:"iso_639_1"`
	VoteAverage float64 `json:"vote_average" yaml:"vote_average"`
	VoteCount   int64   `json:"vote_count"   yaml:"vote_count"`
}

// Video represents a trailer, teaser, clip or featurette.
type Video struct {
	ID          string `json:"id"           yaml:"id"`
	ISO6391     string `json:"iso_639_1"    yaml:"iso_639_1"`
	ISO31661    string `json:"iso_3166_1"   yaml:"iso_3166_1"`
	Key         string `json:"key"          yaml:"key"`
	Name        string `json:"name"         yaml:"name"`
	Site        string `json:"site"         yaml:"site"`
	Size        int    `json:"size"         yaml:"size"`
	Type        string `json:"type"         yaml:"type"`
	Official    bool   `json:"official"     yaml:"official"`
	PublishedAt string `json:"published_at" yaml:"published_at"`
}

// VideoList is the envelope returned by the video endpoints.
type VideoList struct {
	ID      int64   `json:"id"      yaml:"id"`
	Results []Video `json:"results" yaml:"results"`
}

// Genre represents a movie or TV genre.
type Genre struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ProductionCompany represents a company attached to a movie or show.
type ProductionCompany struct {
	ID            int64   `json:"id"             yaml:"id"`
	LogoPath      *string `json:"logo_path"      yaml:"logo_path"`
	Name          string  `json:"name"           yaml:"name"`
	OriginCountry string  `json:"origin_country" yaml:"origin_country"`
}

// ProductionCountry represents a production country.
type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1" yaml:"iso_3166_1"`
	Name     string `json:"name"       yaml:"name"`
}

// SpokenLanguage represents a spoken language entry.
type SpokenLanguage struct {
	EnglishName string `json:"english_name" yaml:"english_name"`
	ISO6391     string `json:"iso_639_1"    yaml:"iso_639_1"`
	Name        string `json:"name"         yaml:"name"`
}

// CastMember represents one cast credit on a movie, show, season or
// episode.
type CastMember struct {
	Adult              bool    `json:"adult"                yaml:"adult"`
	Gender             int     `json:"gender"               yaml:"gender"`
	ID                 int64   `json:"id"                   yaml:"id"`
	KnownForDepartment string  `json:"known_for_department" yaml:"known_for_department"`
	Name               string  `json:"name"                 yaml:"name"`
	OriginalName       string  `json:"original_name"        yaml:"original_name"`
	Popularity         float64 `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string `json:"profile_path"         yaml:"profile_path"`
	CastID             int64   `json:"cast_id"              yaml:"cast_id"`
	Character          string  `json:"character"            yaml:"character"`
	CreditID           string  `json:"credit_id"            yaml:"credit_id"`
	Order              int     `json:"order"                yaml:"order"`
}

// CrewMember represents one crew credit on a movie, show, season or
// episode.
type CrewMember struct {
	Adult              bool    `json:"adult"                yaml:"adult"`
	Gender             int     `json:"gender"               yaml:"gender"`
	ID                 int64   `json:"id"                   yaml:"id"`
	KnownForDepartment string  `json:"known_for_department" yaml:"known_for_department"`
	Name               string  `json:"name"                 yaml:"name"`
	OriginalName       string  `json:"original_name"        yaml:"original_name"`
	Popularity         float64 `json:"popularity"           yaml:"popularity"`
	ProfilePath        *string `json:"profile_path"         yaml:"profile_path"`
	CreditID           string  `json:"credit_id"            yaml:"credit_id"`
	Department         string  `json:"department"           yaml:"department"`
	Job                string  `json:"job"                  yaml:"job"`
}

// Credits is the cast and crew envelope shared by the movie, TV, season
// and episode credit endpoints.
type Credits struct {
	ID   int64        `json:"id"   yaml:"id"`
	Cast []CastMember `json:"cast" yaml:"cast"`
	Crew []CrewMember `json:"crew" yaml:"crew"`
}

// ExternalIDs holds the external identifiers TMDB tracks for a resource.
// Fields that do not apply to a given media type are served as null.
type ExternalIDs struct {
	ID          int64   `json:"id"           yaml:"id"`
	IMDbID      *string `json:"imdb_id"      yaml:"imdb_id"`
	FreebaseMID *string `json:"freebase_mid" yaml:"freebase_mid"`
	FreebaseID  *string `json:"freebase_id"  yaml:"freebase_id"`
	TVDBID      *int64  `json:"tvdb_id"      yaml:"tvdb_id"`
	TVRageID    *int64  `json:"tvrage_id"    yaml:"tvrage_id"`
	WikidataID  *string `json:"wikidata_id"  yaml:"wikidata_id"`
	FacebookID  *string `json:"facebook_id"  yaml:"facebook_id"`
	InstagramID *string `json:"instagram_id" yaml:"instagram_id"`
	TwitterID   *string `json:"twitter_id"   yaml:"twitter_id"`
}

// AlternativeName is a single alternative name for a company or network.
// Kind is served by TMDB under the "type" key and is frequently the empty
// string, which decodes to nil.
type AlternativeName struct {
	Name string         `json:"name" yaml:"name"`
	Kind NullableString `json:"type" yaml:"type"`
}

// AlternativeTitle is a single localized alternative title.
type AlternativeTitle struct {
	ISO31661 string         `json:"iso_3166_1" yaml:"iso_3166_1"`
	Title    string         `json:"title"      yaml:"title"`
	Kind     NullableString `json:"type"       yaml:"type"`
}

// Translation describes one translation entry; Data carries the
// translated payload, which differs per media type.
type Translation[T any] struct {
	ISO31661    string `json:"iso_3166_1"   yaml:"iso_3166_1"`
	ISO6391     string `json:"iso_639_1"    yaml:"iso_639_1"`
	Name        string `json:"name"         yaml:"name"`
	EnglishName string `json:"english_name" yaml:"english_name"`
	Data        T      `json:"data"         yaml:"data"`
}

// TranslationList is the envelope returned by the translation endpoints.
type TranslationList[T any] struct {
	ID           int64            `json:"id"           yaml:"id"`
	Translations []Translation[T] `json:"translations" yaml:"translations"`
}

// Keyword represents a plot keyword.
type Keyword struct {
	ID   int64  `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
