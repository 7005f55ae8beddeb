package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	instance *Config
	once     sync.Once
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Remote image store (S3 or an S3-compatible endpoint such as MinIO)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3BucketName       string
	S3UseSSL           string

	// Redis (optional; public blog reads fall back to the database when unset)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	CacheTTL      string

	// CORS
	CorsOrigins string
}

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		instance = &Config{
			Port:               getEnv("PORT", "8080"),
			DatabaseURL:        getEnv("DATABASE_URL", ""),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			AWSRegion:          getEnv("AWS_REGION", "eu-west-1"),
			AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
			S3BucketName:       getEnv("S3_BUCKET_NAME", "blog-images"),
			S3UseSSL:           getEnv("S3_USE_SSL", "true"),
			RedisHost:          getEnv("REDIS_HOST", ""),
			RedisPort:          getEnv("REDIS_PORT", "6379"),
			RedisUsername:      getEnv("REDIS_USERNAME", ""),
			RedisPassword:      getEnv("REDIS_PASSWORD", ""),
			CacheTTL:           getEnv("CACHE_TTL_SECONDS", "60"),
			CorsOrigins:        getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
		}
	})
	return instance
}

// Get returns the loaded config instance
func Get() *Config {
	return instance
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
