package tmdb

import "context"

// CollectionsClient provides access to the collection endpoints.
type CollectionsClient interface {
	// Get returns the details of a collection, parts included.
	Get(ctx context.Context, collectionID int64, params *QueryParams) (*CollectionDetails, error)
	// Images returns the posters and backdrops of a collection.
	Images(ctx context.Context, collectionID int64, params *QueryParams) (*CollectionImages, error)
	// Translations returns the translated fields of a collection.
	Translations(ctx context.Context, collectionID int64) (*TranslationList[CollectionTranslationData], error)
}

// Collection represents a collection summary.
type Collection struct {
	Adult            bool    `json:"adult"             yaml:"adult"`
	BackdropPath     *string `json:"backdrop_path"     yaml:"backdrop_path"`
	ID               int64   `json:"id"                yaml:"id"`
	Name             string  `json:"name"              yaml:"name"`
	OriginalLanguage string  `json:"original_language" yaml:"original_language"`
	OriginalName     string  `json:"original_name"     yaml:"original_name"`
	Overview         string  `json:"overview"          yaml:"overview"`
	PosterPath       *string `json:"poster_path"       yaml:"poster_path"`
}

// CollectionDetails represents the full collection payload.
type CollectionDetails struct {
	BackdropPath *string `json:"backdrop_path" yaml:"backdrop_path"`
	ID           int64   `json:"id"            yaml:"id"`
	Name         string  `json:"name"          yaml:"name"`
	Overview     string  `json:"overview"      yaml:"overview"`
	Parts        []Movie `json:"parts"         yaml:"parts"`
	PosterPath   *string `json:"poster_path"   yaml:"poster_path"`
}

// CollectionImages is the envelope for collection images.
type CollectionImages struct {
	ID        int64   `json:"id"        yaml:"id"`
	Backdrops []Image `json:"backdrops" yaml:"backdrops"`
	Posters   []Image `json:"posters"   yaml:"posters"`
}

// CollectionTranslationData carries the translated fields of a
// collection.
type CollectionTranslationData struct {
	Homepage string `json:"homepage" yaml:"homepage"`
	Overview string `json:"overview" yaml:"overview"`
	Title    string `json:"title"    yaml:"title"`
}
