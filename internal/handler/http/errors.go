// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry the "Bearer <token>" scheme with a
	// non-empty token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Wire messages of the error taxonomy. Kept as constants so handlers and
// tests agree on the exact response bodies.
const (
	msgValidationError         = "Validation error"
	msgInternalServerError     = "Internal server error"
	msgInvalidJSON             = "Invalid JSON was passed"
	msgInvalidCredentials      = "Invalid credentials"
	msgEmailAlreadyExists      = "User with this email already exists"
	msgUserNotFound            = "User not found"
	msgInvalidUserIDFormat     = "Invalid user ID format"
	msgTransactionNotFound     = "Financial transaction not found"
	msgAccessTokenRequired     = "Access token is required"
	msgInvalidToken            = "Invalid token"
	msgTokenExpired            = "Token expired"
	msgInvalidTokenFormat      = "Invalid token format"
	msgUserCreatedSuccessfully = "User created successfully"
	msgLoginSuccessful         = "Login successful"
)
