package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load must work from environment variables alone; no .env file exists in the
// test directory.
func TestLoadFromEnvironmentOnly(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "parking")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "parking", cfg.Database.DBName)
	assert.True(t, cfg.Server.IsProduction())

	// Defaults apply when the variable is unset.
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, 7, cfg.JWT.CookieExpiryDays)
}

func TestDatabaseDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "opos",
		Password: "secret",
		DBName:   "parking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=opos password=secret dbname=parking sslmode=disable",
		dbCfg.DSN(),
	)
}
