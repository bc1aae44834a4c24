// Package auth carries the credential types used to authenticate
// requests against the API.
package auth

import (
	"net/http"
	"net/url"
)

// Credentials injects authentication material into an outgoing request.
type Credentials interface {
	// Apply attaches the credential to the request, either as a header
	// or as a query parameter.
	Apply(header http.Header, query url.Values)
}

// APIKey authenticates with a v3 API key passed as the api_key query
// parameter.
type APIKey struct {
	key string
}

// NewAPIKey creates API key credentials.
func NewAPIKey(key string) *APIKey {
	return &APIKey{key: key}
}

// Apply implements Credentials.
func (a *APIKey) Apply(_ http.Header, query url.Values) {
	query.Set("api_key", a.key)
}

// BearerToken authenticates with a v4 read access token sent in the
// Authorization header.
type BearerToken struct {
	token string
}

// NewBearerToken creates bearer token credentials.
func NewBearerToken(token string) *BearerToken {
	return &BearerToken{token: token}
}

// Apply implements Credentials.
func (b *BearerToken) Apply(header http.Header, _ url.Values) {
	header.Set("Authorization", "Bearer "+b.token)
}
