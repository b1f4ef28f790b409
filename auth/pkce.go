package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

// verifierByteLength is the number of random bytes drawn for a code
// verifier. 96 bytes encode to exactly 128 base64url characters, the
// maximum length RFC 7636 allows.
const verifierByteLength = 96

// PKCECodes holds a code verifier and its derived challenge as defined by
// RFC 7636. The verifier is a secret and must not leave the client until
// the token exchange; the challenge is sent in the authorization request.
type PKCECodes struct {
	CodeVerifier  string
	CodeChallenge string
}

// GeneratePKCECodes generates a fresh code verifier and challenge pair.
// Each call produces new random values.
func GeneratePKCECodes() (*PKCECodes, error) {
	verifier, err := generateCodeVerifier()
	if err != nil {
		return nil, errors.Wrap(err, "[GeneratePKCECodes] generateCodeVerifier")
	}

	return &PKCECodes{
		CodeVerifier:  verifier,
		CodeChallenge: ChallengeS256(verifier),
	}, nil
}

// ChallengeS256 derives the S256 code challenge from a verifier:
// BASE64URL(SHA256(verifier)), unpadded. The derivation is deterministic.
func ChallengeS256(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

func generateCodeVerifier() (string, error) {
	b := make([]byte, verifierByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// generateRandomState creates a random base64url token used as the CSRF
// state parameter.
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
