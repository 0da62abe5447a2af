// Package config provides environment-driven configuration for graphrag.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds all application configuration values.
type Config struct {
	Port         string
	ListenHost   string
	CORSOrigins  []string
	LogLevel     string
	TriplesFile  string
	MaxDepth     int
	BatchWorkers int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("GRAPHRAG_PORT", "3030"),
		ListenHost:  envOrDefault("GRAPHRAG_LISTEN_HOST", "127.0.0.1"),
		LogLevel:    envOrDefault("GRAPHRAG_LOG_LEVEL", "info"),
		TriplesFile: envOrDefault("GRAPHRAG_TRIPLES_FILE", ""),
	}

	maxDepth, err := strconv.Atoi(envOrDefault("GRAPHRAG_MAX_DEPTH", "10"))
	if err != nil || maxDepth < 1 || maxDepth > 100 {
		return nil, fmt.Errorf("GRAPHRAG_MAX_DEPTH must be an integer between 1 and 100")
	}
	cfg.MaxDepth = maxDepth

	workers, err := strconv.Atoi(envOrDefault("GRAPHRAG_BATCH_WORKERS", "4"))
	if err != nil || workers < 1 || workers > 64 {
		return nil, fmt.Errorf("GRAPHRAG_BATCH_WORKERS must be an integer between 1 and 64")
	}
	cfg.BatchWorkers = workers

	origins := envOrDefault("GRAPHRAG_CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ListenHost, c.Port)
}

// Level returns the parsed logrus level. validate guarantees it parses.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
