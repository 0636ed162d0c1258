package service

import "errors"

// Sentinel errors returned by service methods. Handlers match against these
// with [errors.Is] to choose the HTTP status and wire message.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password. The two cases are deliberately indistinguishable
	// so that the endpoint cannot be used to probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned by ParseToken when the token was valid
	// once but its exp claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidToken is returned by ParseToken for a malformed token, a
	// signature mismatch, or an unexpected signing method.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidTokenSubject is returned by ParseToken when the token is
	// authentic but its subject claim is not a canonical UUID.
	ErrInvalidTokenSubject = errors.New("invalid token subject")
)
