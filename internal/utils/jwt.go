package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angaro192/crud-financas/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The token includes the following claims:
//   - Subject   (sub): the user ID in UUID text form
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - email: the user's email address
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	userID        - ID of the user the token is issued for (UUID text form)
//	email         - email address embedded in the claim set
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.ID, user.Email, 7*24*time.Hour, "secret")
func GenerateJWTToken(userID UUID, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == "" || email == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID.String(),
		Email:        email,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC-SHA256 only)
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Expiry is reported as a distinct condition: callers can match the returned
// error against [jwt.ErrTokenExpired] with errors.Is to tell an expired token
// apart from a malformed one or a signature mismatch.
//
// Parameters:
//
//	tokenString  - the raw signed JWT string to validate and parse
//	tokenSignKey - secret key used to verify the token signature
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object, UserID, and Email
//	error        - non-nil if validation fails or claims are missing
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.Subject,
		Email:        claims.Email,
	}, nil
}

// ParseBearerToken extracts the token value from a raw "Authorization"
// header of the form "Bearer <token>". Returns an error when the header does
// not split into exactly a scheme and a non-empty token.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
