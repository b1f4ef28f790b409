package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-spotify-auth/oauthmodel"
	"github.com/pkg/errors"
)

// TokenExchanger abstracts the accounts service token endpoint. The
// production implementation lives in the spotify package; tests inject a
// fake so the handshake can be driven without a network dependency.
type TokenExchanger interface {
	// Exchange redeems an authorization code, proving possession of the
	// code verifier that produced the original challenge.
	Exchange(ctx context.Context, code, verifier string) (*oauthmodel.TokenBundle, error)
	// Refresh obtains a new token bundle from a refresh token. It is
	// independent of the original PKCE exchange.
	Refresh(ctx context.Context, refreshToken string) (*oauthmodel.TokenBundle, error)
}

// Handshake drives a single OAuth 2.0 authorization code flow with PKCE:
// verifier/challenge generation, authorization URL construction, redirect
// validation and code exchange. It is owned by one flow at a time and is
// not safe for concurrent use.
type Handshake struct {
	exchanger         TokenExchanger
	authorizeEndpoint string
	clientID          string
	redirectURI       string
	scope             string
	state             string
	pkce              *PKCECodes
}

// HandshakeOption defines a function type to modify the Handshake instance.
type HandshakeOption func(*Handshake)

// WithState sets the CSRF state parameter instead of generating a random one.
func WithState(state string) HandshakeOption {
	return func(h *Handshake) {
		h.state = state
	}
}

// NewHandshake initializes a Handshake for the given client registration.
// A random CSRF state is generated unless one is supplied via WithState.
func NewHandshake(exchanger TokenExchanger, authorizeEndpoint, clientID, redirectURI, scope string, options ...HandshakeOption) (*Handshake, error) {
	if exchanger == nil {
		return nil, errors.New("[NewHandshake] exchanger is required")
	}
	if authorizeEndpoint == "" {
		return nil, errors.New("[NewHandshake] authorizeEndpoint is required")
	}

	h := &Handshake{
		exchanger:         exchanger,
		authorizeEndpoint: authorizeEndpoint,
		clientID:          clientID,
		redirectURI:       redirectURI,
		scope:             scope,
	}

	for _, opt := range options {
		opt(h)
	}

	if h.state == "" {
		state, err := generateRandomState()
		if err != nil {
			return nil, errors.Wrap(err, "[NewHandshake] generateRandomState")
		}
		h.state = state
	}

	return h, nil
}

// State returns the CSRF state parameter for this flow.
func (h *Handshake) State() string {
	return h.state
}

// GeneratePKCECodes creates and stores a fresh verifier/challenge pair,
// replacing any previously generated values.
func (h *Handshake) GeneratePKCECodes() (*PKCECodes, error) {
	pkce, err := GeneratePKCECodes()
	if err != nil {
		return nil, errors.Wrap(err, "[Handshake.GeneratePKCECodes]")
	}
	h.pkce = pkce
	return pkce, nil
}

// AuthorizationURL builds the URL the user must visit to authorize the
// application. PKCE codes are generated lazily on the first call.
func (h *Handshake) AuthorizationURL() (string, error) {
	if h.pkce == nil {
		if _, err := h.GeneratePKCECodes(); err != nil {
			return "", errors.Wrap(err, "[Handshake.AuthorizationURL] GeneratePKCECodes")
		}
	}

	params := url.Values{
		"client_id":             {h.clientID},
		"response_type":         {string(oauthmodel.CodeResponseType)},
		"redirect_uri":          {h.redirectURI},
		"scope":                 {h.scope},
		"state":                 {h.state},
		"code_challenge_method": {string(oauthmodel.CodeMethodTypeS256)},
		"code_challenge":        {h.pkce.CodeChallenge},
	}

	return fmt.Sprintf("%s?%s", h.authorizeEndpoint, params.Encode()), nil
}

// ValidateRedirect checks the redirect URL the accounts service sent the
// user back to and extracts the authorization code.
//
// An error parameter always wins, even when a code is also present. A
// missing or mismatched state is fatal. A matching state with no code
// returns an empty code and no error: the caller must treat the
// authorization as incomplete, not failed.
func (h *Handshake) ValidateRedirect(redirectURL string) (string, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return "", errors.Wrap(err, "[Handshake.ValidateRedirect] url.Parse")
	}
	query := parsed.Query()

	if errCode := query.Get("error"); errCode != "" {
		return "", &AuthorizationError{Code: errCode}
	}

	// Exact string comparison, no normalization.
	if !query.Has("state") || query.Get("state") != h.state {
		return "", StateMismatchErr
	}

	if !query.Has("code") {
		return "", nil
	}

	return query.Get("code"), nil
}

// ExchangeCode redeems an authorization code for a token bundle. The code
// verifier must already exist, which means AuthorizationURL (or
// GeneratePKCECodes) must have been called for this flow.
func (h *Handshake) ExchangeCode(ctx context.Context, code string) (*oauthmodel.TokenBundle, error) {
	if h.pkce == nil {
		return nil, VerifierNotGeneratedErr
	}

	bundle, err := h.exchanger.Exchange(ctx, code, h.pkce.CodeVerifier)
	if err != nil {
		return nil, errors.Wrap(err, "[Handshake.ExchangeCode] exchanger.Exchange")
	}
	return bundle, nil
}

// Refresh exchanges a refresh token for a new token bundle.
func (h *Handshake) Refresh(ctx context.Context, refreshToken string) (*oauthmodel.TokenBundle, error) {
	bundle, err := h.exchanger.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Handshake.Refresh] exchanger.Refresh")
	}
	return bundle, nil
}
