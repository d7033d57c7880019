package config

import (
	"os"
	"strconv"
)

type BrokerConfig struct {
	Port          string
	StorageDriver string
	BrokerEmail   string
	BrokerPass    string
	SessionTTLMin int
	PostgresCfg   PostgresConfig
	RedisCfg      RedisConfig
	MinioCfg      MinioConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MinioConfig struct {
	MinioURL       string
	MinioAccessKey string
	MinioSecretKey string
	MinioLocation  string
	MinioSecure    string
}

func New() *BrokerConfig {
	return &BrokerConfig{
		Port:          getEnvOrDefault("PORT", "8080"),
		StorageDriver: getEnvOrDefault("STORAGE_DRIVER", "memory"),
		BrokerEmail:   getEnvOrDefault("BROKER_EMAIL", "john.doe@example.com"),
		BrokerPass:    getEnvOrDefault("BROKER_PASSWORD", "changeme"),
		SessionTTLMin: getEnvIntOrDefault("SESSION_TTL_MINUTES", 60),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "weseg"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		MinioCfg: MinioConfig{
			MinioURL:       getEnvOrDefault("MINIO_ENDPOINT", "http://localhost:9000"),
			MinioAccessKey: getEnvOrDefault("MINIO_ACCESS_KEY", "minio"),
			MinioSecretKey: getEnvOrDefault("MINIO_SECRET_KEY", "minio123"),
			MinioLocation:  getEnvOrDefault("MINIO_LOCATION", "us-east-1"),
			MinioSecure:    getEnvOrDefault("MINIO_SECURE", "false"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
