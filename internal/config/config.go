package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	RoutingQuery = "query" // owner id in ?user_id=
	RoutingPath  = "path"  // owner id in /expenses/:userId
)

// Config holds the process configuration
type Config struct {
	Env                string
	ServerPort         string
	RoutingVariant     string
	HashPreviewEnabled bool
	DB                 *DBConfig
}

// Load reads configuration from environment variables, falling back to the
// defaults of a local development setup
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load DB config: %w", err)
	}

	variant := getEnv("ROUTING_VARIANT", RoutingQuery)
	if variant != RoutingQuery && variant != RoutingPath {
		return nil, fmt.Errorf("invalid ROUTING_VARIANT %q, expected %q or %q", variant, RoutingQuery, RoutingPath)
	}

	hashPreview, err := strconv.ParseBool(getEnv("HASH_PREVIEW_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid HASH_PREVIEW_ENABLED: %w", err)
	}

	return &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerPort:         getEnv("SERVER_PORT", "3000"),
		RoutingVariant:     variant,
		HashPreviewEnabled: hashPreview,
		DB:                 dbCfg,
	}, nil
}

// IsProduction reports whether APP_ENV is "production"
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
