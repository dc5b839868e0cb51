package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsDefaultJWTSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadAcceptsExplicitSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "an-actual-secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "an-actual-secret", cfg.JWT.Secret)
}

func TestLoadDatabaseConfigRejectsDefaultPasswordInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadDatabaseConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoadDatabaseConfigAcceptsExplicitPasswordInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "prod-db-password")

	cfg, err := LoadDatabaseConfig()

	require.NoError(t, err)
	assert.Equal(t, "prod-db-password", cfg.Password)
}

func TestLoadDatabaseConfigDefaultsOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := LoadDatabaseConfig()

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 5432, cfg.Port)
}
