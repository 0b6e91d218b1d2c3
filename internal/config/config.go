package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	AWS      AWSConfig
	Redis    RedisConfig
}

type AppConfig struct {
	HTTPPort  string
	LogLevel  string
	LogFormat string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type AWSConfig struct {
	Region                 string
	S3Bucket               string
	AdminCredentialsSecret string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: req("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
	}

	cfg.AWS = AWSConfig{
		Region:                 opt("AWS_REGION", ""),
		S3Bucket:               req("S3_BUCKET"),
		AdminCredentialsSecret: req("ADMIN_CREDENTIALS_SECRET"),
	}

	cfg.App = AppConfig{
		HTTPPort:  opt("HTTP_PORT", "8080"),
		LogLevel:  opt("LOG_LEVEL", "info"),
		LogFormat: opt("LOG_FORMAT", "json"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the database variables. Used by tooling that
// talks to Postgres without the rest of the stack.
func LoadDatabase() (DatabaseConfig, error) {
	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg := DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: req("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
	}

	if len(missing) > 0 {
		return DatabaseConfig{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
