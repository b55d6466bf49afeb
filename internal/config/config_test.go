package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "skills")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("JWT_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.HTTPPort)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, 100, cfg.Matching.PoolLimit)
	assert.Equal(t, 200, cfg.Matching.CategoryPoolLimit)
	assert.Equal(t, 10, cfg.Matching.RecommendedLimit)
	assert.Equal(t, 20, cfg.Matching.PopularSkills)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("MATCHING_POOL_LIMIT", "50")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, 50, cfg.Matching.PoolLimit)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "Config.JWT.AccessSecret")
}

func TestLoad_InvalidMatchingLimit(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCHING_POOL_LIMIT", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidConfig))
}

func TestLoad_File(t *testing.T) {
	setRequired(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("app:\n  name: from-file\nmatching:\n  popular_skills: 5\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.AppName)
	assert.Equal(t, 5, cfg.Matching.PopularSkills)
}
