// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration; the HTTP listener, environment, log level and shutdown
// grace period belong to WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURL         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	DBName           string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Rotated log file teed with the core logger; empty disables it.
	LogFile string

	// CORS. A single "*" allows any origin without credentials.
	CORSAllowedOrigins []string

	// Store operation timeouts (zero keeps the built-in default)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
