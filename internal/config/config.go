package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables (e.g. NEUROQUERY_DB_URL)
const EnvPrefix = "NEUROQUERY_"

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	// URL is the Postgres connection string. Required.
	URL string `mapstructure:"url"`
	// SRID of the ns.coordinates.geom column. The query points must be
	// built in the same spatial reference system or ST_DWithin silently
	// matches nothing.
	SRID int `mapstructure:"srid"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"corsorigin"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig holds optional MinIO settings for static assets.
// Storage is disabled when Endpoint is empty.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"accesskey"`
	SecretKey string `mapstructure:"secretkey"`
	UseSSL    bool   `mapstructure:"usessl"`
	Bucket    string `mapstructure:"bucket"`
}

// ImageConfig holds the local fallback asset for /img
type ImageConfig struct {
	Path string `mapstructure:"path"`
}

// Config is the full server configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"db"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Image    ImageConfig    `mapstructure:"img"`
}

// Load reads configuration from .env and NEUROQUERY_-prefixed environment
// variables, applies defaults, and validates required settings.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db.srid", 4326)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.format", "json")
	v.SetDefault("img.path", "assets/amygdala.gif")

	// 1. Load from .env file (if exists)
	v.SetConfigFile(".env")
	if err := v.ReadInConfig(); err != nil {
		// The .env file is optional; a parse failure surfaces later
		// through missing keys during validation.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			_ = err
		}
	}

	// 2. Load from environment variables.
	// Viper's AutomaticEnv doesn't work well with Unmarshal if keys aren't
	// known, so iterate env vars and populate viper directly.
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		key, value := pair[0], pair[1]

		if strings.HasPrefix(key, EnvPrefix) {
			// NEUROQUERY_DB_URL -> db.url
			propKey := strings.TrimPrefix(key, EnvPrefix)
			propKey = strings.ToLower(strings.Replace(propKey, "_", ".", 1))
			v.Set(propKey, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("missing required setting db.url (set %sDB_URL)", EnvPrefix)
	}
	cfg.Database.URL = NormalizeDatabaseURL(cfg.Database.URL)

	return &cfg, nil
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme to the
// canonical postgresql:// scheme.
func NormalizeDatabaseURL(url string) string {
	if rest, ok := strings.CutPrefix(url, "postgres://"); ok {
		return "postgresql://" + rest
	}
	return url
}
