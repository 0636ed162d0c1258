package models

import "time"

// User represents an account entity used for authentication and ownership
// of financial transactions. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID text form).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Uniqueness is enforced by the
	// database; a violation surfaces as a duplicate-email error.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized to JSON and must never hold plaintext once
	// the account has been created.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the externally visible projection of a User.
// It carries no credential material.
type PublicUser struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Public returns the credential-free projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
