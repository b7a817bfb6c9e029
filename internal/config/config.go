package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// APIConfig configures the upstream BondMaster API client. MaxRetries is a
// pointer so an explicit `max_retries: 0` (retries off) survives defaulting.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=1"`
	MaxRetries     *int   `yaml:"max_retries" validate:"omitempty,gte=0"`
	APIKey         string `yaml:"api_key"`
}

// CacheConfig configures the bond TTL cache. Both values are fixed for the
// cache's lifetime.
type CacheConfig struct {
	MaxSize    int `yaml:"max_size" validate:"gt=0"`
	TTLSeconds int `yaml:"ttl_seconds" validate:"gt=0"`
}

// QueryCacheConfig configures the BigCache-backed list/search cache.
type QueryCacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	SizeMB     int  `yaml:"size_mb" validate:"gte=0"`
	TTLSeconds int  `yaml:"ttl_seconds" validate:"gte=0"`
}

// ServerConfig configures the local HTTP surface.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" validate:"required"`
}

// Config is the main configuration structure.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Cache      CacheConfig      `yaml:"cache"`
	QueryCache QueryCacheConfig `yaml:"query_cache"`
	Server     ServerConfig     `yaml:"server"`
}

var validate = validator.New()

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the result.
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default creates a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	config.applyEnvOverrides()
	return config
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://127.0.0.1:8000"
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.API.MaxRetries == nil {
		retries := 2
		c.API.MaxRetries = &retries
	}
	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 500
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 300
	}
	if c.QueryCache.SizeMB == 0 {
		c.QueryCache.SizeMB = 16
	}
	if c.QueryCache.TTLSeconds == 0 {
		c.QueryCache.TTLSeconds = 60
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = "127.0.0.1:8090"
	}
}

// applyEnvOverrides mirrors the environment variables the add-in has always
// honored, taking precedence over file values.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("BONDMASTER_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if key := os.Getenv("BONDMASTER_API_KEY"); key != "" {
		c.API.APIKey = key
	}
}

// Timeout returns the API request timeout as a duration.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Retries returns the retry budget, applying the default when unset.
func (c *APIConfig) Retries() int {
	if c.MaxRetries == nil {
		return 2
	}
	return *c.MaxRetries
}

// TTL returns the bond cache TTL as a duration.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// TTL returns the query cache TTL as a duration.
func (c *QueryCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
