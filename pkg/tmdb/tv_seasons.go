package tmdb

import "context"

// TVSeasonsClient provides access to the TV season endpoints.
type TVSeasonsClient interface {
	// Get returns the details of a season, episodes included.
	Get(ctx context.Context, seriesID int64, seasonNumber int, params *QueryParams) (*TVSeasonDetails, error)
	// Credits returns the cast and crew for a season.
	Credits(ctx context.Context, seriesID int64, seasonNumber int, params *QueryParams) (*Credits, error)
	// ExternalIDs returns the external identifiers for a season.
	ExternalIDs(ctx context.Context, seriesID int64, seasonNumber int) (*ExternalIDs, error)
	// Images returns the posters for a season.
	Images(ctx context.Context, seriesID int64, seasonNumber int, params *QueryParams) (*TVSeasonImages, error)
	// Translations returns the translated fields for a season.
	Translations(ctx context.Context, seriesID int64, seasonNumber int) (*TranslationList[TVSeasonTranslationData], error)
	// Videos returns the videos for a season.
	Videos(ctx context.Context, seriesID int64, seasonNumber int, params *QueryParams) (*VideoList, error)
}

// TVSeason represents a season summary as embedded in series details.
type TVSeason struct {
	AirDate      string  `json:"air_date"      yaml:"air_date"`
	EpisodeCount int     `json:"episode_count" yaml:"episode_count"`
	ID           int64   `json:"id"            yaml:"id"`
	Name         string  `json:"name"          yaml:"name"`
	Overview     string  `json:"overview"      yaml:"overview"`
	PosterPath   *string `json:"poster_path"   yaml:"poster_path"`
	SeasonNumber int     `json:"season_number" yaml:"season_number"`
	VoteAverage  float64 `json:"vote_average"  yaml:"vote_average"`
}

// TVSeasonDetails represents the full season payload, episodes included.
type TVSeasonDetails struct {
	IDString     string      `json:"_id"           yaml:"_id"`
	AirDate      string      `json:"air_date"      yaml:"air_date"`
	Episodes     []TVEpisode `json:"episodes"      yaml:"episodes"`
	ID           int64       `json:"id"            yaml:"id"`
	Name         string      `json:"name"          yaml:"name"`
	Overview     string      `json:"overview"      yaml:"overview"`
	PosterPath   *string     `json:"poster_path"   yaml:"poster_path"`
	SeasonNumber int         `json:"season_number" yaml:"season_number"`
	VoteAverage  float64     `json:"vote_average"  yaml:"vote_average"`
}

// TVSeasonImages is the envelope for season images.
type TVSeasonImages struct {
	ID      int64   `json:"id"      yaml:"id"`
	Posters []Image `json:"posters" yaml:"posters"`
}

// TVSeasonTranslationData carries the translated fields of a season.
type TVSeasonTranslationData struct {
	Name     string `json:"name"     yaml:"name"`
	Overview string `json:"overview" yaml:"overview"`
}
