package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// PeopleClient implements tmdb.PeopleClient.
type PeopleClient struct {
	httpClient *http.Client
}

// NewPeopleClient creates a new people client.
func NewPeopleClient(httpClient *http.Client) *PeopleClient {
	return &PeopleClient{httpClient: httpClient}
}

// Get implements tmdb.PeopleClient.Get.
func (c *PeopleClient) Get(ctx context.Context, personID int64, params *tmdb.QueryParams) (*tmdb.PersonDetails, error) {
	if personID <= 0 {
		return nil, tmdb.ErrInvalidPersonID
	}

	path := fmt.Sprintf("/person/%d", personID)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting person: %w", err)
	}

	var details tmdb.PersonDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing person response: %w", err)
	}

	return &details, nil
}

// MovieCredits implements tmdb.PeopleClient.MovieCredits.
func (c *PeopleClient) MovieCredits(ctx context.Context, personID int64, params *tmdb.QueryParams) (*tmdb.PersonCredits, error) {
	return c.credits(ctx, personID, "movie_credits", params)
}

// TVCredits implements tmdb.PeopleClient.TVCredits.
func (c *PeopleClient) TVCredits(ctx context.Context, personID int64, params *tmdb.QueryParams) (*tmdb.PersonCredits, error) {
	return c.credits(ctx, personID, "tv_credits", params)
}

// CombinedCredits implements tmdb.PeopleClient.CombinedCredits.
func (c *PeopleClient) CombinedCredits(ctx context.Context, personID int64, params *tmdb.QueryParams) (*tmdb.PersonCredits, error) {
	return c.credits(ctx, personID, "combined_credits", params)
}

func (c *PeopleClient) credits(ctx context.Context, personID int64, segment string, params *tmdb.QueryParams) (*tmdb.PersonCredits, error) {
	if personID <= 0 {
		return nil, tmdb.ErrInvalidPersonID
	}

	path := fmt.Sprintf("/person/%d/%s", personID, segment)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting person credits: %w", err)
	}

	var credits tmdb.PersonCredits
	if err := json.Unmarshal(resp.Body, &credits); err != nil {
		return nil, fmt.Errorf("parsing person credits response: %w", err)
	}

	return &credits, nil
}

// ExternalIDs implements tmdb.PeopleClient.ExternalIDs.
func (c *PeopleClient) ExternalIDs(ctx context.Context, personID int64) (*tmdb.ExternalIDs, error) {
	if personID <= 0 {
		return nil, tmdb.ErrInvalidPersonID
	}

	path := fmt.Sprintf("/person/%d/external_ids", personID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting person external ids: %w", err)
	}

	var ids tmdb.ExternalIDs
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("parsing person external ids response: %w", err)
	}

	return &ids, nil
}

// Images implements tmdb.PeopleClient.Images.
func (c *PeopleClient) Images(ctx context.Context, personID int64) (*tmdb.PersonImages, error) {
	if personID <= 0 {
		return nil, tmdb.ErrInvalidPersonID
	}

	path := fmt.Sprintf("/person/%d/images", personID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting person images: %w", err)
	}

	var images tmdb.PersonImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing person images response: %w", err)
	}

	return &images, nil
}

// Translations implements tmdb.PeopleClient.Translations.
func (c *PeopleClient) Translations(ctx context.Context, personID int64) (*tmdb.TranslationList[tmdb.PersonTranslationData], error) {
	if personID <= 0 {
		return nil, tmdb.ErrInvalidPersonID
	}

	path := fmt.Sprintf("/person/%d/translations", personID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting person translations: %w", err)
	}

	var translations tmdb.TranslationList[tmdb.PersonTranslationData]
	if err := json.Unmarshal(resp.Body, &translations); err != nil {
		return nil, fmt.Errorf("parsing person translations response: %w", err)
	}

	return &translations, nil
}

// Popular implements tmdb.PeopleClient.Popular.
func (c *PeopleClient) Popular(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[tmdb.Person], error) {
	resp, err := c.httpClient.Get(ctx, "/person/popular", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting popular people: %w", err)
	}

	var page tmdb.Page[tmdb.Person]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing popular people response: %w", err)
	}

	return &page, nil
}

// Latest implements tmdb.PeopleClient.Latest.
func (c *PeopleClient) Latest(ctx context.Context, params *tmdb.QueryParams) (*tmdb.PersonDetails, error) {
	resp, err := c.httpClient.Get(ctx, "/person/latest", params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting latest person: %w", err)
	}

	var details tmdb.PersonDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing latest person response: %w", err)
	}

	return &details, nil
}
