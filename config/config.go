// Package config loads the service settings from the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8080"
	DefaultAllowedOrigin = "http://localhost:3000"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	GinMode        string
}

// Load reads settings from the process environment. When envFile exists its
// values are loaded first without overriding variables already set.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:           strings.TrimSpace(os.Getenv("PORT")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{DefaultAllowedOrigin}
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
