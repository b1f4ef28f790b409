package auth

import (
	"context"

	"github.com/jrsteele09/go-spotify-auth/spotify"
	"github.com/pkg/errors"
)

// ClientFactory builds an API client handle from a bearer access token.
// Building is a pure construction step: token validity is not checked until
// the first real API call.
type ClientFactory interface {
	Build(accessToken string) *spotify.Client
}

// Manager is a stateful facade over the Handshake engine. It tracks the
// tokens and client handle for a single authentication flow. A Manager
// instance is owned by the one flow driving it and is not safe for
// concurrent use.
type Manager struct {
	handshake *Handshake
	factory   ClientFactory

	accessToken  string
	refreshToken string
	client       *spotify.Client
}

// NewManager initializes a Manager with its handshake engine and client factory.
func NewManager(handshake *Handshake, factory ClientFactory) (*Manager, error) {
	if handshake == nil {
		return nil, errors.New("[NewManager] handshake is required")
	}
	if factory == nil {
		return nil, errors.New("[NewManager] factory is required")
	}
	return &Manager{handshake: handshake, factory: factory}, nil
}

// Start begins the authentication flow and returns the authorization URL
// the user must visit.
func (m *Manager) Start() (string, error) {
	authURL, err := m.handshake.AuthorizationURL()
	if err != nil {
		return "", errors.Wrap(err, "[Manager.Start] AuthorizationURL")
	}
	return authURL, nil
}

// Complete finishes the flow with the redirect URL the user landed on:
// validates it, exchanges the code for tokens, stores them and returns an
// authenticated client handle. A redirect with no code fails with
// IncompleteAuthorizationErr.
func (m *Manager) Complete(ctx context.Context, redirectURL string) (*spotify.Client, error) {
	code, err := m.handshake.ValidateRedirect(redirectURL)
	if err != nil {
		return nil, errors.Wrap(err, "[Manager.Complete] ValidateRedirect")
	}
	if code == "" {
		return nil, IncompleteAuthorizationErr
	}

	bundle, err := m.handshake.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "[Manager.Complete] ExchangeCode")
	}

	m.accessToken = bundle.AccessToken
	if bundle.HasRefreshToken() {
		m.refreshToken = bundle.RefreshToken
	}
	m.client = m.factory.Build(m.accessToken)

	return m.client, nil
}

// Refresh exchanges the stored refresh token for a new access token and
// rebuilds the client handle. The stored refresh token is only replaced
// when the response rotates it.
func (m *Manager) Refresh(ctx context.Context) (*spotify.Client, error) {
	if m.refreshToken == "" {
		return nil, NoRefreshTokenErr
	}

	bundle, err := m.handshake.Refresh(ctx, m.refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Manager.Refresh] handshake.Refresh")
	}

	m.accessToken = bundle.AccessToken
	if bundle.HasRefreshToken() {
		m.refreshToken = bundle.RefreshToken
	}
	m.client = m.factory.Build(m.accessToken)

	return m.client, nil
}

// Client returns the current client handle, nil when not authenticated.
func (m *Manager) Client() *spotify.Client {
	return m.client
}

// IsAuthenticated reports whether the manager holds both a client handle
// and an access token.
func (m *Manager) IsAuthenticated() bool {
	return m.client != nil && m.accessToken != ""
}
