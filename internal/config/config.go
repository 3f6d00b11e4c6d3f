package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Driver   string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		Path     string
	}

	Server struct {
		Port    string
		GinMode string
	}

	CORS struct {
		AllowOrigins string
	}

	Admin struct {
		Password      string
		SessionSecret string
		SessionTTL    time.Duration
	}

	Pix struct {
		Key          string
		MerchantName string
		MerchantCity string
	}

	Upload struct {
		Dir         string
		MaxFileSize int64
	}

	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
		PublicURL string
	}

	Log struct {
		Level string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Driver = getEnv("DB_DRIVER", "sqlite")
	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "presentes")
	config.DB.Password = getEnv("DB_PASSWORD", "presentes_password")
	config.DB.Name = getEnv("DB_NAME", "presentes_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	config.DB.Path = getEnv("DB_PATH", "db/presentes.db")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")

	config.Admin.Password = getEnv("ADMIN_PASSWORD", "admin")
	config.Admin.SessionSecret = getEnv("SESSION_SECRET", "presentes-dev-secret")
	config.Admin.SessionTTL = getEnvAsDuration("SESSION_TTL", 24*time.Hour)

	config.Pix.Key = getEnv("PIX_KEY", "43130257829")
	config.Pix.MerchantName = getEnv("PIX_MERCHANT_NAME", "LUCAS HENRIQUE R RAUGI")
	config.Pix.MerchantCity = getEnv("PIX_MERCHANT_CITY", "MATAO")

	config.Upload.Dir = getEnv("UPLOADS_DIR", "./uploads")
	config.Upload.MaxFileSize = getEnvAsInt64("MAX_FILE_SIZE", 10485760)

	config.Minio.Endpoint = getEnv("MINIO_ENDPOINT", "")
	config.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", "")
	config.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", "")
	config.Minio.Bucket = getEnv("MINIO_BUCKET", "presentes")
	config.Minio.UseSSL = getEnvAsBool("MINIO_USE_SSL", false)
	config.Minio.PublicURL = getEnv("MINIO_PUBLIC_URL", "")

	config.Log.Level = getEnv("LOG_LEVEL", "info")

	return config
}

// GetDatabaseURL returns the PostgreSQL connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
