package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MimoJanra/CertPulse/internal/models"
)

const (
	DefaultPort           = 443
	DefaultWarningDays    = 30
	DefaultErrorDays      = 7
	DefaultTimeoutSeconds = 10
	DefaultMaxWorkers     = 10
)

type Site struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

type Thresholds struct {
	WarningDays int `yaml:"warning_days"`
	ErrorDays   int `yaml:"error_days"`
}

type Config struct {
	Sites          []Site     `yaml:"sites"`
	Thresholds     Thresholds `yaml:"thresholds"`
	TimeoutSeconds int        `yaml:"timeout_seconds"`
	MaxWorkers     int        `yaml:"max_workers"`
	WebhookURL     string     `yaml:"webhook_url"`
}

// Load reads and parses the YAML config at path and fills in defaults for
// every omitted field. A missing or unparsable file is an error; callers
// treat it as fatal before any checks start.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	for i, site := range cfg.Sites {
		if site.Host == "" {
			return nil, fmt.Errorf("config %s: sites[%d] has no host", path, i)
		}
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Thresholds.WarningDays == 0 {
		c.Thresholds.WarningDays = DefaultWarningDays
	}
	if c.Thresholds.ErrorDays == 0 {
		c.Thresholds.ErrorDays = DefaultErrorDays
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
	for i := range c.Sites {
		if c.Sites[i].Port == 0 {
			c.Sites[i].Port = DefaultPort
		}
		if c.Sites[i].Name == "" {
			c.Sites[i].Name = c.Sites[i].Host
		}
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Endpoints converts the configured sites into immutable check endpoints.
func (c *Config) Endpoints() []models.Endpoint {
	endpoints := make([]models.Endpoint, 0, len(c.Sites))
	for _, site := range c.Sites {
		endpoints = append(endpoints, models.Endpoint{
			Host:  site.Host,
			Port:  site.Port,
			Label: site.Name,
		})
	}
	return endpoints
}

// ModelThresholds returns the thresholds in the shape the checker consumes.
func (c *Config) ModelThresholds() models.Thresholds {
	return models.Thresholds{
		WarningDays: c.Thresholds.WarningDays,
		ErrorDays:   c.Thresholds.ErrorDays,
	}
}
