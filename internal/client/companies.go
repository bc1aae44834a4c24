package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moviekit/tmdb-client/internal/http"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
)

// CompaniesClient implements tmdb.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client) *CompaniesClient {
	return &CompaniesClient{httpClient: httpClient}
}

// Get implements tmdb.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, companyID int64) (*tmdb.CompanyDetails, error) {
	if companyID <= 0 {
		return nil, tmdb.ErrInvalidCompanyID
	}

	path := fmt.Sprintf("/company/%d", companyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var details tmdb.CompanyDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return &details, nil
}

// AlternativeNames implements tmdb.CompaniesClient.AlternativeNames.
func (c *CompaniesClient) AlternativeNames(ctx context.Context, companyID int64) (*tmdb.CompanyAlternativeNames, error) {
	if companyID <= 0 {
		return nil, tmdb.ErrInvalidCompanyID
	}

	path := fmt.Sprintf("/company/%d/alternative_names", companyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company alternative names: %w", err)
	}

	var names tmdb.CompanyAlternativeNames
	if err := json.Unmarshal(resp.Body, &names); err != nil {
		return nil, fmt.Errorf("parsing company alternative names response: %w", err)
	}

	return &names, nil
}

// Images implements tmdb.CompaniesClient.Images.
func (c *CompaniesClient) Images(ctx context.Context, companyID int64) (*tmdb.CompanyImages, error) {
	if companyID <= 0 {
		return nil, tmdb.ErrInvalidCompanyID
	}

	path := fmt.Sprintf("/company/%d/images", companyID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company images: %w", err)
	}

	var images tmdb.CompanyImages
	if err := json.Unmarshal(resp.Body, &images); err != nil {
		return nil, fmt.Errorf("parsing company images response: %w", err)
	}

	return &images, nil
}
