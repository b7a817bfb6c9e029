package main

import (
	"fmt"

	"go.uber.org/zap"

	"bondcache/internal/cache"
	"bondcache/internal/client"
	"bondcache/internal/config"
	"bondcache/internal/httpserver"
	"bondcache/internal/interfaces"
	"bondcache/internal/service"
)

// CompositionRoot holds all application dependencies and provides a
// centralized place for dependency injection and service initialization.
type CompositionRoot struct {
	// Configuration
	Config *config.Config
	Logger *zap.Logger

	// Cache components
	BondCache  interfaces.BondCache
	QueryCache interfaces.QueryCache

	// Services
	APIClient  *client.Client
	Service    *service.Service
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration (defines how components should be configured)
// 3. Cache components (bond cache, query cache)
// 4. API client and operations service
// 5. HTTP server (uses all above components)
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.initCacheComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize cache components: %w", err)
	}

	root.initServices()
	root.initHTTPServer()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration. A missing config file is
// not fatal; the defaults describe a local BondMaster instance.
func (r *CompositionRoot) loadConfig() error {
	configPath := GetConfigPath()
	if configPath == "" {
		r.Logger.Info("No config file found, using defaults")
		r.Config = config.Default()
		return nil
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// initCacheComponents initializes the bond cache and the query cache
func (r *CompositionRoot) initCacheComponents() error {
	r.BondCache = cache.New(r.Config.Cache.MaxSize, r.Config.Cache.TTL())
	r.Logger.Info("Bond cache initialized",
		zap.Int("max_size", r.Config.Cache.MaxSize),
		zap.Duration("ttl", r.Config.Cache.TTL()))

	if r.Config.QueryCache.Enabled {
		queryCache, err := cache.NewQueryCache(r.Config.QueryCache.SizeMB, r.Config.QueryCache.TTL(), r.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize query cache: %w", err)
		}
		r.QueryCache = queryCache
		r.Logger.Info("Query cache initialized", zap.Int("size_mb", r.Config.QueryCache.SizeMB))
	} else {
		r.QueryCache = cache.NewNoOpQueryCache()
		r.Logger.Info("Query cache disabled")
	}

	return nil
}

// initServices initializes the API client and the operations service
func (r *CompositionRoot) initServices() {
	r.APIClient = client.New(&r.Config.API, r.Logger)
	r.Service = service.New(r.APIClient, r.BondCache, r.QueryCache, r.Logger)
}

// initHTTPServer initializes the HTTP server
func (r *CompositionRoot) initHTTPServer() {
	r.HTTPServer = httpserver.NewServer(r.Service, r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	if r.QueryCache != nil {
		if err := r.QueryCache.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close query cache: %w", err))
		}
	}

	// Sync logger last so the close errors above are flushed
	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}
