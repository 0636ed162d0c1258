// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, UUID validation
// and generation, HTTP response writing, JWT token generation and
// validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. The value is always a validated [UUID]; the auth middleware
// rejects tokens whose subject does not parse as one.
var UserIDCtxKey = contextKey("userID")

// UserEmailCtxKey is the key used to store the authenticated user's email
// in the context.
var UserEmailCtxKey = contextKey("userEmail")

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the context.
//
// Returns the user ID of type [UUID] and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(UUID)
	return userID, ok
}

// GetUserEmailFromContext retrieves the authenticated user's email from
// the context. The ok flag reports whether the value was present and of the
// expected string type.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
