package auth

import (
	"errors"
	"fmt"
)

var (
	// StateMismatchErr indicates the state echoed back by the accounts
	// service does not exactly match the state generated for this session.
	// This is always fatal: it means a forged or stale redirect.
	StateMismatchErr = errors.New("state parameter missing or mismatched")

	// VerifierNotGeneratedErr indicates a code exchange was attempted before
	// an authorization URL (and therefore a code verifier) was generated.
	VerifierNotGeneratedErr = errors.New("code verifier not generated, call AuthorizationURL first")

	// NoRefreshTokenErr indicates a refresh was attempted with no stored
	// refresh token.
	NoRefreshTokenErr = errors.New("no refresh token available")

	// IncompleteAuthorizationErr indicates the redirect URL carried no
	// authorization code.
	IncompleteAuthorizationErr = errors.New("no authorization code found in redirect URL")
)

// AuthorizationError is returned when the accounts service reports an error
// in the redirect, for example "access_denied" when the user declines
// consent. The provider's error code is surfaced verbatim.
type AuthorizationError struct {
	Code string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization error: %s", e.Code)
}
