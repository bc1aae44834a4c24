package tmdb

import "context"

// External sources accepted by the find endpoint.
const (
	ExternalSourceIMDb      = "imdb_id"
	ExternalSourceTVDB      = "tvdb_id"
	ExternalSourceWikidata  = "wikidata_id"
	ExternalSourceFacebook  = "facebook_id"
	ExternalSourceInstagram = "instagram_id"
	ExternalSourceTwitter   = "twitter_id"
)

// FindClient provides access to the external-id lookup endpoint.
type FindClient interface {
	// ByExternalID resolves an external identifier (e.g. an IMDb id) to
	// the TMDB resources it maps to. source must be one of the
	// ExternalSource constants.
	ByExternalID(ctx context.Context, externalID, source string, params *QueryParams) (*FindResults, error)
}

// FindResults groups the resources an external id resolved to.
type FindResults struct {
	MovieResults     []Movie     `json:"movie_results"      yaml:"movie_results"`
	TVResults        []TVShow    `json:"tv_results"         yaml:"tv_results"`
	PersonResults    []Person    `json:"person_results"     yaml:"person_results"`
	TVSeasonResults  []TVSeason  `json:"tv_season_results"  yaml:"tv_season_results"`
	TVEpisodeResults []TVEpisode `json:"tv_episode_results" yaml:"tv_episode_results"`
}
