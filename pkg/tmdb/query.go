package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams holds the query parameters shared across TMDB endpoints.
// Endpoint-specific filters go through Extra.
type QueryParams struct {
	// Language is an ISO 639-1 value, optionally with a region suffix
	// (e.g. "en-US"), applied to fields that support translation.
	Language string

	// Region is an ISO 3166-1 value used to scope release dates.
	Region string

	// Page selects the result page (1-based).
	Page int

	// IncludeAdult includes adult content in search results.
	IncludeAdult bool

	// AppendToResponse lists extra sub-requests to fold into a details
	// response (e.g. "videos", "images").
	AppendToResponse []string

	// ImageLanguages populates include_image_language for image requests.
	ImageLanguages []string

	// Extra holds endpoint-specific parameters, joined with commas when a
	// key has multiple values.
	Extra map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Extra: make(map[string][]string),
	}
}

// WithLanguage sets the language parameter.
func (q *QueryParams) WithLanguage(language string) *QueryParams {
	q.Language = language

	return q
}

// WithRegion sets the region parameter.
func (q *QueryParams) WithRegion(region string) *QueryParams {
	q.Region = region

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithIncludeAdult sets the include_adult flag.
func (q *QueryParams) WithIncludeAdult(include bool) *QueryParams {
	q.IncludeAdult = include

	return q
}

// WithAppendToResponse appends sub-requests to append_to_response.
func (q *QueryParams) WithAppendToResponse(values ...string) *QueryParams {
	q.AppendToResponse = append(q.AppendToResponse, values...)

	return q
}

// WithImageLanguages appends languages to include_image_language.
func (q *QueryParams) WithImageLanguages(values ...string) *QueryParams {
	q.ImageLanguages = append(q.ImageLanguages, values...)

	return q
}

// WithExtra appends values for an endpoint-specific parameter.
func (q *QueryParams) WithExtra(key string, values ...string) *QueryParams {
	if q.Extra == nil {
		q.Extra = make(map[string][]string)
	}

	q.Extra[key] = append(q.Extra[key], values...)

	return q
}

// ToValues converts the parameters to url.Values. Zero values are
// omitted; include_adult is only emitted when true, matching the API
// default.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Language != "" {
		values.Set("language", q.Language)
	}

	if q.Region != "" {
		values.Set("region", q.Region)
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.IncludeAdult {
		values.Set("include_adult", "true")
	}

	if len(q.AppendToResponse) > 0 {
		values.Set("append_to_response", strings.Join(q.AppendToResponse, ","))
	}

	if len(q.ImageLanguages) > 0 {
		values.Set("include_image_language", strings.Join(q.ImageLanguages, ","))
	}

	for key, vals := range q.Extra {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}
