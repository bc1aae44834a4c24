package tmdb

import "context"

// TVEpisodesClient provides access to the TV episode endpoints.
type TVEpisodesClient interface {
	// Get returns the details of an episode.
	Get(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *QueryParams) (*TVEpisodeDetails, error)
	// Credits returns the cast, crew and guest stars for an episode.
	Credits(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *QueryParams) (*TVEpisodeCredits, error)
	// ExternalIDs returns the external identifiers for an episode.
	ExternalIDs(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int) (*ExternalIDs, error)
	// Images returns the stills for an episode.
	Images(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *QueryParams) (*TVEpisodeImages, error)
	// Translations returns the translated fields for an episode.
	Translations(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int) (*TranslationList[TVEpisodeTranslationData], error)
	// Videos returns the videos for an episode.
	Videos(ctx context.Context, seriesID int64, seasonNumber, episodeNumber int, params *QueryParams) (*VideoList, error)
}

// TVEpisode represents an episode as embedded in season details.
type TVEpisode struct {
	AirDate        string  `json:"air_date"        yaml:"air_date"`
	EpisodeNumber  int     `json:"episode_number"  yaml:"episode_number"`
	EpisodeType    string  `json:"episode_type"    yaml:"episode_type"`
	ID             int64   `json:"id"              yaml:"id"`
	Name           string  `json:"name"            yaml:"name"`
	Overview       string  `json:"overview"        yaml:"overview"`
	ProductionCode string  `json:"production_code" yaml:"production_code"`
	Runtime        int     `json:"runtime"         yaml:"runtime"`
	SeasonNumber   int     `json:"season_number"   yaml:"season_number"`
	ShowID         int64   `json:"show_id"         yaml:"show_id"`
	StillPath      *string `json:"still_path"      yaml:"still_path"`
	VoteAverage    float64 `json:"vote_average"    yaml:"vote_average"`
	VoteCount      int64   `json:"vote_count"      yaml:"vote_count"`
}

// TVEpisodeDetails represents the full episode payload.
type TVEpisodeDetails struct {
	AirDate        string       `json:"air_date"        yaml:"air_date"`
	Crew           []CrewMember `json:"crew"            yaml:"crew"`
	EpisodeNumber  int          `json:"episode_number"  yaml:"episode_number"`
	GuestStars     []CastMember `json:"guest_stars"     yaml:"guest_stars"`
	ID             int64        `json:"id"              yaml:"id"`
	Name           string       `json:"name"            yaml:"name"`
	Overview       string       `json:"overview"        yaml:"overview"`
	ProductionCode string       `json:"production_code" yaml:"production_code"`
	Runtime        int          `json:"runtime"         yaml:"runtime"`
	SeasonNumber   int          `json:"season_number"   yaml:"season_number"`
	StillPath      *string      `json:"still_path"      yaml:"still_path"`
	VoteAverage    float64      `json:"vote_average"    yaml:"vote_average"`
	VoteCount      int64        `json:"vote_count"      yaml:"vote_count"`
}

// TVEpisodeCredits is the credits envelope for an episode, guest stars
// included.
type TVEpisodeCredits struct {
	ID         int64        `json:"id"          yaml:"id"`
	Cast       []CastMember `json:"cast"        yaml:"cast"`
	Crew       []CrewMember `json:"crew"        yaml:"crew"`
	GuestStars []CastMember `json:"guest_stars" yaml:"guest_stars"`
}

// TVEpisodeImages is the envelope for episode stills.
type TVEpisodeImages struct {
	ID     int64   `json:"id"     yaml:"id"`
	Stills []Image `json:"stills" yaml:"stills"`
}

// TVEpisodeTranslationData carries the translated fields of an episode.
type TVEpisodeTranslationData struct {
	Name     string `json:"name"     yaml:"name"`
	Overview string `json:"overview" yaml:"overview"`
}
