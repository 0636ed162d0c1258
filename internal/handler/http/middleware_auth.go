// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/service"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// verifies it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's ID and email in the request context under
// [utils.UserIDCtxKey] and [utils.UserEmailCtxKey] before delegating to the
// next handler.
//
// Rejection outcomes, all HTTP 401 with a JSON error body:
//   - the "Authorization" header is absent or not "Bearer <token>" →
//     "Access token is required";
//   - the token is malformed or its signature does not verify →
//     "Invalid token";
//   - the token was valid once but has expired → "Token expired";
//   - the token is authentic but its subject is not a canonical UUID →
//     "Invalid token format".
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: msgAccessTokenRequired}, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteJSON(w, models.ErrorResponse{Error: msgTokenExpired}, http.StatusUnauthorized)
			case errors.Is(err, service.ErrInvalidTokenSubject):
				log.Err(err).Msg("token subject is not a UUID")
				utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidTokenFormat}, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidToken}, http.StatusUnauthorized)
			}
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, utils.UUID(token.UserID))
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent entirely.
//   - [ErrInvalidAuthorizationHeader] — if the header does not carry the
//     "Bearer" scheme or the token value is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
