package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTP     HTTPConfig
	Store    StoreConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

// Backend 값: "sqlite" 또는 "postgres"
type StoreConfig struct {
	Backend string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type SQLiteConfig struct {
	Path string
}

func Load() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:           getenv("HTTP_ADDR", ":8080"),
			AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Backend: getenv("DB_BACKEND", "sqlite"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		SQLite: SQLiteConfig{
			Path: getenv("SQLITE_PATH", "memo.db"),
		},
	}
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
