package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIKey = "FLICKR_API_KEY"
)

// File defaults
const (
	DefaultConfigFile         = "flickr-search.yaml"
	DefaultEndpoint           = "https://api.flickr.com/services/rest/"
	DefaultPerPage            = 20
	DefaultTimeout            = 15 * time.Second
	DefaultConcurrency        = 6
	DefaultShareMaxDimension  = 2048
	DefaultLogLevel           = "info"
	MaxPerPage                = 100
	MaxConcurrency            = 32
	MaxShareDimensionAccepted = 8192
)

// Config holds the startup configuration read from a YAML file
type Config struct {
	Flickr FlickrConfig `yaml:"flickr"`
	Share  ShareConfig  `yaml:"share"`
	Log    LogConfig    `yaml:"log"`
}

// FlickrConfig holds photo service configuration
type FlickrConfig struct {
	APIKey      string        `yaml:"api_key"`
	Endpoint    string        `yaml:"endpoint"`
	PerPage     int           `yaml:"per_page"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// ShareConfig holds share export configuration
type ShareConfig struct {
	Directory    string `yaml:"directory"`
	MaxDimension uint   `yaml:"max_dimension"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Flickr: FlickrConfig{
			Endpoint:    DefaultEndpoint,
			PerPage:     DefaultPerPage,
			Timeout:     DefaultTimeout,
			Concurrency: DefaultConcurrency,
		},
		Share: ShareConfig{
			MaxDimension: DefaultShareMaxDimension,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		cfg.Flickr.APIKey = key
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Flickr.Endpoint == "" {
		c.Flickr.Endpoint = DefaultEndpoint
	}
	if c.Flickr.PerPage == 0 {
		c.Flickr.PerPage = DefaultPerPage
	}
	if c.Flickr.Timeout == 0 {
		c.Flickr.Timeout = DefaultTimeout
	}
	if c.Flickr.Concurrency == 0 {
		c.Flickr.Concurrency = DefaultConcurrency
	}
	if c.Share.MaxDimension == 0 {
		c.Share.MaxDimension = DefaultShareMaxDimension
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Flickr.Endpoint, "http://") && !strings.HasPrefix(c.Flickr.Endpoint, "https://") {
		return fmt.Errorf("invalid flickr.endpoint %q: must start with http:// or https://", c.Flickr.Endpoint)
	}
	if c.Flickr.PerPage < 1 || c.Flickr.PerPage > MaxPerPage {
		return fmt.Errorf("invalid flickr.per_page %d: must be between 1 and %d", c.Flickr.PerPage, MaxPerPage)
	}
	if c.Flickr.Timeout < 0 {
		return fmt.Errorf("invalid flickr.timeout %s: must not be negative", c.Flickr.Timeout)
	}
	if c.Flickr.Concurrency < 1 || c.Flickr.Concurrency > MaxConcurrency {
		return fmt.Errorf("invalid flickr.concurrency %d: must be between 1 and %d", c.Flickr.Concurrency, MaxConcurrency)
	}
	if c.Share.MaxDimension > MaxShareDimensionAccepted {
		return fmt.Errorf("invalid share.max_dimension %d: must be at most %d", c.Share.MaxDimension, MaxShareDimensionAccepted)
	}
	return nil
}
