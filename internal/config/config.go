// Package config loads and validates the Spotify application settings from
// the environment. Loading is explicit: callers decide when the environment
// (and an optional .env file) is read, nothing happens at import time.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	interrors "github.com/jrsteele09/go-spotify-auth/internal/errors"
	"github.com/jrsteele09/go-spotify-auth/spotify"
)

const (
	clientIDEnvVar    = "SPOTIFY_CLIENT_ID"
	redirectURIEnvVar = "SPOTIFY_REDIRECT_URI"
	scopeEnvVar       = "SPOTIFY_SCOPE"
)

// Config holds the settings required to run the authentication flow.
type Config struct {
	// ClientID is the Spotify application client ID. Required.
	ClientID string
	// RedirectURI is the redirect URI registered with the Spotify app.
	// Required, must be an http:// or https:// URL.
	RedirectURI string
	// Scope is the space-separated list of requested permission scopes.
	Scope string
}

// Load reads the configuration from the environment. When envFile is
// non-empty and exists, it is loaded first without overriding variables
// already set in the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, interrors.Wrapf(err, "godotenv.Load %s", envFile)
			}
		}
	}

	cfg := &Config{
		ClientID:    GetEnv(clientIDEnvVar, ""),
		RedirectURI: GetEnv(redirectURIEnvVar, ""),
		Scope:       GetEnv(scopeEnvVar, spotify.DefaultScope),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required settings and reports every missing or
// invalid field at once, wrapped around ErrConfiguration.
func (c *Config) Validate() error {
	var problems []string

	if c.ClientID == "" {
		problems = append(problems, clientIDEnvVar+" is required")
	}
	if c.RedirectURI == "" {
		problems = append(problems, redirectURIEnvVar+" is required")
	} else if !strings.HasPrefix(c.RedirectURI, "http://") && !strings.HasPrefix(c.RedirectURI, "https://") {
		problems = append(problems, redirectURIEnvVar+" must be a valid http:// or https:// URL")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidationError lists every configuration problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Unwrap ties validation failures into the shared error taxonomy so callers
// can match on interrors.ErrConfiguration.
func (e *ValidationError) Unwrap() error {
	return interrors.ErrConfiguration
}

// GetEnv returns the value of envVar, or defaultValue when unset or empty.
func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
