package oauthmodel

// TokenBundle represents the response from the Spotify accounts service
// token endpoint. This is the standard OAuth2 token endpoint response format
// as defined in RFC 6749, returned for both the authorization_code and
// refresh_token grants.
type TokenBundle struct {
	// AccessToken is the bearer token used to access the Spotify Web API.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Lifespan: Short-lived (one hour for Spotify)
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token (always "Bearer").
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Usage: Client should refresh the token before expiration
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Usage: Send to the token endpoint with grant_type=refresh_token
	// Note: May be absent on refresh responses; the previously issued
	// refresh token remains valid in that case.
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "user-read-private user-read-email"
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`
}

// HasRefreshToken reports whether the bundle carries a rotated refresh token.
func (tb *TokenBundle) HasRefreshToken() bool {
	return tb.RefreshToken != ""
}
