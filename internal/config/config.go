package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultMaxUploadBytes is the upload size ceiling (10 MiB).
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds the connection settings for the redis status backend.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// AIConfig selects the hosted model. APIKey is the single required credential
// and is read from OPENAI_API_KEY whatever the provider, so AI_PROVIDER=claude
// or gemini expects that provider's key in OPENAI_API_KEY.
type AIConfig struct {
	Provider   string
	Model      string
	BaseURL    string
	APIKey     string
	RatePerMin int
	Burst      int
}

// UploadConfig controls where uploads land and how large they may be.
type UploadConfig struct {
	Backend  string // local | minio
	Dir      string
	MaxBytes int64
}

// StatusConfig selects the pipeline status backend.
type StatusConfig struct {
	Backend string // memory | redis | postgres
	TTL     time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogTZ    string
	Upload   UploadConfig
	Status   StatusConfig
	AI       AIConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		LogTZ:   getEnv("LOG_TZ", "UTC"),
		Upload: UploadConfig{
			Backend:  getEnv("STORAGE_BACKEND", "local"),
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		},
		Status: StatusConfig{
			Backend: getEnv("STATUS_BACKEND", "memory"),
			TTL:     time.Duration(getEnvInt("STATUS_TTL_SEC", 3600)) * time.Second,
		},
		AI: AIConfig{
			Provider:   getEnv("AI_PROVIDER", "openai"),
			Model:      getEnv("AI_MODEL", ""),
			BaseURL:    getEnv("AI_BASE_URL", ""),
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			RatePerMin: getEnvInt("AI_RATE_PER_MIN", 0),
			Burst:      getEnvInt("AI_BURST", 5),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Username: getEnv("REDIS_USERNAME", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

// Location resolves LogTZ, falling back to UTC for unknown zones.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
