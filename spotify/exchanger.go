package spotify

import (
	"context"
	"strings"
	"time"

	"github.com/jrsteele09/go-spotify-auth/oauthmodel"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Exchanger performs authorization code and refresh token exchanges against
// the accounts service using the standard oauth2 library. Spotify PKCE
// clients are public: no client secret is sent, the code verifier is the
// proof of possession.
type Exchanger struct {
	conf *oauth2.Config
}

// ExchangerOption defines a function type to modify the Exchanger instance.
type ExchangerOption func(*Exchanger)

// WithTokenEndpoint overrides the token endpoint, primarily for tests.
func WithTokenEndpoint(tokenURL string) ExchangerOption {
	return func(e *Exchanger) {
		e.conf.Endpoint.TokenURL = tokenURL
	}
}

// NewExchanger creates an Exchanger for the given client registration.
// scope is the space-separated scope string from configuration.
func NewExchanger(clientID, redirectURI, scope string, options ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		conf: &oauth2.Config{
			ClientID:    clientID,
			RedirectURL: redirectURI,
			Scopes:      strings.Fields(scope),
			Endpoint: oauth2.Endpoint{
				AuthURL:   AuthorizeEndpoint,
				TokenURL:  TokenEndpoint,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Exchange redeems an authorization code for tokens, sending the PKCE code
// verifier alongside it.
func (e *Exchanger) Exchange(ctx context.Context, code, verifier string) (*oauthmodel.TokenBundle, error) {
	token, err := e.conf.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, errors.Wrap(err, "[Exchanger.Exchange] conf.Exchange")
	}
	return bundleFromToken(token), nil
}

// Refresh obtains a new token bundle from a refresh token.
func (e *Exchanger) Refresh(ctx context.Context, refreshToken string) (*oauthmodel.TokenBundle, error) {
	source := e.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, errors.Wrap(err, "[Exchanger.Refresh] source.Token")
	}
	return bundleFromToken(token), nil
}

func bundleFromToken(token *oauth2.Token) *oauthmodel.TokenBundle {
	bundle := &oauthmodel.TokenBundle{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		bundle.Scope = scope
	}
	if !token.Expiry.IsZero() {
		bundle.ExpiresIn = int(time.Until(token.Expiry).Round(time.Second).Seconds())
	}
	return bundle
}
