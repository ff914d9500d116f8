package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Trakt    TraktConfig     `mapstructure:"trakt"`
	Catalogs []CatalogConfig `mapstructure:"catalogs"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	LogLevel     string `mapstructure:"log_level"`
	DashboardDir string `mapstructure:"dashboard_dir"`
}

// TraktConfig holds Trakt API configuration
type TraktConfig struct {
	BaseURL                 string `mapstructure:"base_url"`
	WebHost                 string `mapstructure:"web_host"` // list pages are only fetched from this host and its subdomains
	ScrapeRequestsPerSecond int    `mapstructure:"scrape_requests_per_second"`

	// Authentication
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// CatalogConfig describes one catalog published in the manifest
type CatalogConfig struct {
	Name         string `mapstructure:"name"`
	Type         string `mapstructure:"type"`     // movie, series
	Endpoint     string `mapstructure:"endpoint"` // list, trending
	ListID       string `mapstructure:"list_id"`
	ExtendedInfo bool   `mapstructure:"extended_info"`
}

// Load reads config.yaml (optional) and .env (optional), with environment variable overrides
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	if err := godotenv.Load(dir + "/.env"); err == nil {
		log.Debug("Loaded environment from .env")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Info("No config.yaml found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if errs := config.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.dashboard_dir", "dist")

	v.SetDefault("trakt.base_url", "https://api.trakt.tv")
	v.SetDefault("trakt.web_host", "trakt.tv")
	v.SetDefault("trakt.scrape_requests_per_second", 2)
	v.SetDefault("trakt.client_id", "")
	v.SetDefault("trakt.client_secret", "")

	v.SetDefault("catalogs", []map[string]any{
		{"name": "Netflix Movies", "type": "movie", "endpoint": "list", "list_id": "20764770", "extended_info": true},
		{"name": "Netflix TV Shows", "type": "series", "endpoint": "list", "list_id": "20764471", "extended_info": true},
	})
}
