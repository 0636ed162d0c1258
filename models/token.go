package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued JWT.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (sub, iat, exp)
// and adds the authenticated user's email. The "sub" claim holds the user's
// UUID in text form.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the email address of the user the token was issued for.
	Email string `json:"email"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and Email are cached copies of the corresponding claims, populated
// during issuance or after successful verification, so callers do not need
// to re-parse the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim
	// (UUID text form).
	UserID string `json:"-"`

	// Email is the email address extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
