package tmdb

import "context"

// ReviewsClient provides access to the review endpoints.
type ReviewsClient interface {
	// Get returns the details of a review.
	Get(ctx context.Context, reviewID string) (*ReviewDetails, error)
}

// ReviewAuthor describes the author of a review.
type ReviewAuthor struct {
	Name       string   `json:"name"        yaml:"name"`
	Username   string   `json:"username"    yaml:"username"`
	AvatarPath *string  `json:"avatar_path" yaml:"avatar_path"`
	Rating     *float64 `json:"rating"      yaml:"rating"`
}

// Review represents a user review as embedded in review lists.
type Review struct {
	Author        string       `json:"author"         yaml:"author"`
	AuthorDetails ReviewAuthor `json:"author_details" yaml:"author_details"`
	Content       string       `json:"content"        yaml:"content"`
	CreatedAt     string       `json:"created_at"     yaml:"created_at"`
	ID            string       `json:"id"             yaml:"id"`
	UpdatedAt     string       `json:"updated_at"     yaml:"updated_at"`
	URL           string       `json:"url"            yaml:"url"`
}

// ReviewDetails represents the full review payload.
type ReviewDetails struct {
	Review

	ISO6391    string `json:"iso_639_1"   yaml:"iso_639_1"`
	MediaID    int64  `json:"media_id"    yaml:"media_id"`
	MediaTitle string `json:"media_title" yaml:"media_title"`
	MediaType  string `json:"media_type"  yaml:"media_type"`
}
