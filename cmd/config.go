package cmd

import (
	"errors"
	"io/fs"
	"os"

	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	DBDriver                string
	LogMode                 string
	OrderCompletionSchedule string
}

// LoadConfig reads the environment after applying envFile, if it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		HTTPPort:                envOr("HTTP_PORT", "8080"),
		DBHost:                  envOr("DB_HOST", "localhost"),
		DBPort:                  envOr("DB_PORT", "5432"),
		DBUser:                  envOr("DB_USER", "postgres"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  envOr("DB_NAME", "manufacturing"),
		DBSslMode:               envOr("DB_SSLMODE", "disable"),
		DBDriver:                envOr("DB_DRIVER", postgres.DriverPgx),
		LogMode:                 envOr("LOG_MODE", "dev"),
		OrderCompletionSchedule: envOr("ORDER_COMPLETION_SCHEDULE", jobs.DefaultOrderCompletionSchedule),
	}, nil
}

func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
		Driver:   c.DBDriver,
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
