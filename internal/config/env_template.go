package config

import (
	"os"

	interrors "github.com/jrsteele09/go-spotify-auth/internal/errors"
)

const envTemplate = `# Spotify API Configuration
# Get these values from https://developer.spotify.com/dashboard

# Required: Your Spotify application client ID
SPOTIFY_CLIENT_ID=your_client_id_here

# Required: Redirect URI registered with your Spotify app
# For local development, you can use: http://localhost:8080/callback
SPOTIFY_REDIRECT_URI=http://localhost:8080/callback

# Optional: Spotify API scopes (space-separated)
# Default: user-read-private user-read-email
# Common scopes:
# - user-read-private: Read access to user's private information
# - user-read-email: Read access to user's email address
# - user-top-read: Read access to user's top artists and tracks
# - playlist-read-private: Read access to user's private playlists
# - playlist-read-collaborative: Read access to user's collaborative playlists
SPOTIFY_SCOPE=user-read-private user-read-email user-top-read
`

// EnvTemplate returns the .env file template written by the setup command.
func EnvTemplate() string {
	return envTemplate
}

// WriteEnvTemplate writes the template to path unless the file already
// exists. It reports whether the file was written.
func WriteEnvTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(envTemplate), 0o600); err != nil {
		return false, interrors.Wrapf(err, "writing %s", path)
	}
	return true, nil
}
