package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source (DATABASE_URL, -d flag, JSON).
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey indicates that the JWT signing key is unset (or
	// left at the insecure development placeholder) outside development mode.
	ErrMissingTokenSignKey = errors.New("JWT signing key is required outside development")

	// ErrUnknownEnvironment indicates an unrecognized APP_ENV value.
	ErrUnknownEnvironment = errors.New("unknown deployment environment")
)
