package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the process configuration resolved from the environment at
// startup. It is constructed once in main and passed down explicitly.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	Env            string
	AllowedOrigins []string
}

// developmentOrigins covers the local frontend dev servers.
var developmentOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Env:            os.Getenv("ENV"),
		AllowedOrigins: resolveOrigins(),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// resolveOrigins merges the dev defaults with the deployed frontend's
// CLIENT_URL and any extra comma-separated ALLOWED_ORIGINS.
func resolveOrigins() []string {
	origins := append([]string{}, developmentOrigins...)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

func (c *Config) Production() bool {
	return c.Env == "production"
}
