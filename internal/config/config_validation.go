// SPDX-License-Identifier: Apache-2.0

package config

// applyDefaults fills every field still at its zero value after all sources
// were merged. The insecure token-key fallback is applied only in
// development mode; validate rejects a missing key everywhere else.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.App.TokenSignKey == "" && cfg.App.Env == EnvDevelopment {
		cfg.App.TokenSignKey = DevInsecureTokenSignKey
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - the database DSN is always required;
//   - APP_ENV must be one of the recognized environments;
//   - outside development the JWT signing key must be set explicitly —
//     there is no silent insecure fallback in production.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return ErrUnknownEnvironment
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.Env == EnvProduction && cfg.App.TokenSignKey == DevInsecureTokenSignKey {
		return ErrMissingTokenSignKey
	}

	return nil
}
