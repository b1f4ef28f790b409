// Package spotify provides the Spotify-specific collaborators for the
// authentication flow: the accounts service token exchanger and a typed
// Web API client whose responses are validated against the documented
// Spotify object shapes.
package spotify

const (
	// AuthorizeEndpoint is the accounts service authorization endpoint the
	// user is sent to at the start of the flow.
	AuthorizeEndpoint = "https://accounts.spotify.com/authorize"

	// TokenEndpoint is the accounts service token endpoint used for both
	// the authorization_code and refresh_token grants.
	TokenEndpoint = "https://accounts.spotify.com/api/token"

	// APIBaseURL is the base URL of the Spotify Web API.
	APIBaseURL = "https://api.spotify.com/v1"
)

// DefaultScope is requested when the caller does not configure one.
const DefaultScope = "user-read-private user-read-email"
