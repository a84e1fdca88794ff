package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_RATE_PER_MIN", "30")
	t.Setenv("STATUS_BACKEND", "redis")
	t.Setenv("STATUS_TTL_SEC", "60")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, 30, cfg.AI.RatePerMin)
	assert.Equal(t, "redis", cfg.Status.Backend)
	assert.Equal(t, time.Minute, cfg.Status.TTL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("AI_PROVIDER", "")

	cfg := Load()

	assert.Empty(t, cfg.AI.APIKey)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "local", cfg.Upload.Backend)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{LogTZ: "Local"}
	assert.Equal(t, time.Local, cfg.Location())

	cfg.LogTZ = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	t.Setenv(key, "11534336")
	assert.Equal(t, int64(11534336), getEnvInt64(key, 0))

	t.Setenv(key, "1e6")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))
}
