package errors

import (
	"errors"
	"fmt"
)

// Shared error categories for the authentication flow. Packages keep their
// own specific sentinels; these exist so callers (the CLI in particular)
// can classify failures without importing every package.
var (
	// ErrConfiguration marks missing or invalid required settings. Surfaced
	// to the user, process exits non-zero, never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthentication marks a failed authentication handshake of any
	// kind: provider error, state mismatch, or failed exchange.
	ErrAuthentication = errors.New("authentication error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
