package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "ROUTING_VARIANT", "HASH_PREVIEW_ENABLED",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, RoutingQuery, cfg.RoutingVariant)
	assert.True(t, cfg.HashPreviewEnabled)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=expenses sslmode=disable", cfg.DB.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ROUTING_VARIANT", "path")
	t.Setenv("HASH_PREVIEW_ENABLED", "false")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, RoutingPath, cfg.RoutingVariant)
	assert.False(t, cfg.HashPreviewEnabled)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("routing variant", func(t *testing.T) {
		t.Setenv("ROUTING_VARIANT", "header")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("db port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("hash preview flag", func(t *testing.T) {
		t.Setenv("HASH_PREVIEW_ENABLED", "maybe")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSchemaSQL(t *testing.T) {
	assert.Contains(t, schemaSQL, "username TEXT UNIQUE NOT NULL")
	assert.Contains(t, schemaSQL, "paid NUMERIC NOT NULL")
	// no precision/scale on paid: 1.239 must not round and large sums must fit
	assert.NotRegexp(t, regexp.MustCompile(`paid NUMERIC\s*\(`), schemaSQL)
}
