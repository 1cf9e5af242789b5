// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the Tyte API.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_url, db_name, etc.
//   - Environment variables: TYTE_MONGO_URL, TYTE_DB_NAME, etc.
//   - Command-line flags: --mongo_url, --db_name, etc.
//
// mongo_url and db_name have no defaults; ValidateConfig rejects them empty.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_url", Default: "", Desc: "MongoDB connection URI (required; MONGO_URL also accepted)"},
	{Name: "db_name", Default: "", Desc: "MongoDB database name (required; DB_NAME also accepted)"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},

	{Name: "log_file", Default: "", Desc: "Rotated log file path (blank logs to stdout only)"},

	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated allowed CORS origins"},

	{Name: "timeout_short", Default: "", Desc: "Timeout for single-document operations (e.g., 5s)"},
	{Name: "timeout_medium", Default: "", Desc: "Timeout for list operations (e.g., 10s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// WAFFLE_* and TYTE_* environment variables and flags, merged with
// precedence flags > env > files > defaults. Deployments that predate
// the TYTE_ prefix set MONGO_URL and DB_NAME; those are used when the
// prefixed keys are empty.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TYTE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURL:         strings.TrimSpace(appValues.String("mongo_url")),
		DBName:           strings.TrimSpace(appValues.String("db_name")),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		LogFile: appValues.String("log_file"),

		CORSAllowedOrigins: splitList(appValues.String("cors_allowed_origins")),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
	}
	applyLegacyEnv(&appCfg, logger)

	return coreCfg, appCfg, nil
}

// applyLegacyEnv fills empty Mongo settings from MONGO_URL and DB_NAME.
func applyLegacyEnv(appCfg *AppConfig, logger *zap.Logger) {
	if appCfg.MongoURL == "" {
		if v, ok := os.LookupEnv("MONGO_URL"); ok && strings.TrimSpace(v) != "" {
			appCfg.MongoURL = strings.TrimSpace(v)
			logger.Info("using MONGO_URL for mongo_url")
		}
	}
	if appCfg.DBName == "" {
		if v, ok := os.LookupEnv("DB_NAME"); ok && strings.TrimSpace(v) != "" {
			appCfg.DBName = strings.TrimSpace(v)
			logger.Info("using DB_NAME for db_name")
		}
	}
}

// splitList returns the trimmed, non-empty entries of a comma-separated list.
func splitList(raw string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The Mongo connection settings have no defaults, so a missing value is
// fatal rather than silently pointing at localhost.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURL == "" {
		return errors.New("mongo_url is required (set TYTE_MONGO_URL or MONGO_URL)")
	}
	if appCfg.DBName == "" {
		return errors.New("db_name is required (set TYTE_DB_NAME or DB_NAME)")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURL); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize != 0 {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if len(appCfg.CORSAllowedOrigins) == 0 {
		return errors.New("cors_allowed_origins must not be empty")
	}

	return nil
}
