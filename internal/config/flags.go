package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-p HTTP listen port
//	-env deployment environment (development|production)
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "168h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var port int
	var appEnv string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&port, "p", 0, "HTTP listen port")
	flag.StringVar(&appEnv, "env", "", "Deployment environment (development|production)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Env:           appEnv,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Port:           port,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
