package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pscheid92/landing/internal/domain"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" default:"10"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" default:"20"`

	// Injected page settings. Defaults are applied at resolution time, not here.
	Environment    string `env:"ENVIRONMENT"`
	Author         string `env:"AUTHOR"`
	SiteConfigFile string `env:"SITE_CONFIG_FILE"`

	site domain.SiteConfig
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	site := domain.SiteConfig{Environment: cfg.Environment, Author: cfg.Author}
	if cfg.SiteConfigFile != "" {
		fromFile, err := LoadSiteFile(cfg.SiteConfigFile)
		if err != nil {
			return nil, err
		}
		site = Merge(site, fromFile)
	}
	cfg.site = site

	return &cfg, nil
}

// Site returns the injected page configuration. It is read once by Load and
// never changes afterwards.
func (c *Config) Site() *domain.SiteConfig {
	site := c.site
	return &site
}

// LoadSiteFile reads ENVIRONMENT and AUTHOR from a YAML or JSON file.
func LoadSiteFile(path string) (domain.SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	var site domain.SiteConfig
	if err := yaml.Unmarshal(data, &site); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("failed to parse site config %s: %w", path, err)
	}
	return site, nil
}

// Merge overlays the non-empty fields of override onto base.
func Merge(base, override domain.SiteConfig) domain.SiteConfig {
	if override.Environment != "" {
		base.Environment = override.Environment
	}
	if override.Author != "" {
		base.Author = override.Author
	}
	return base
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}

	if cfg.RateLimitPerSecond <= 0 {
		return errors.New("RATE_LIMIT_PER_SECOND must be positive")
	}
	if cfg.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	}

	return nil
}
