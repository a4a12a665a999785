// Package container wires application dependencies and manages their
// lifecycle.
package container

import (
	"context"
	"log"

	"offerforge/adapters/cache"
	"offerforge/adapters/export"
	"offerforge/adapters/llm"
	"offerforge/adapters/postgres"
	"offerforge/app"
	"offerforge/internal/config"
	"offerforge/internal/errors"
	"offerforge/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	DB *sqlx.DB

	// Adapters
	GenerationClient ports.GenerationClient
	Cache            ports.CacheStore
	OfferRepo        ports.OfferRepository
	Exporter         *export.Exporter

	// Services
	Offers      *app.OfferService
	Optimizer   *app.OptimizeService
	Performance *app.PerformanceService
}

// New builds the container from configuration and an open database
// connection. With no REDIS_URL configured the cache runs in process.
func New(ctx context.Context, cfg *config.Config, db *sqlx.DB) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}
	if db == nil {
		return nil, errors.ConfigInvalid("database connection cannot be nil")
	}

	c := &Container{Config: cfg, DB: db}

	c.GenerationClient = llm.NewOpenAIClient(cfg.AI)
	c.OfferRepo = postgres.NewOfferRepository(db)
	c.Exporter = export.NewExporter()

	if cfg.Cache.RedisURL != "" {
		store, err := cache.NewRedis(cfg.Cache.RedisURL, cfg.Cache.Prefix)
		if err != nil {
			return nil, errors.Wrap(err, "initialize redis cache")
		}
		if err := store.Ping(ctx); err != nil {
			return nil, errors.Wrap(err, "ping redis")
		}
		c.Cache = store
		log.Printf("[Container] Using redis cache at %s", cfg.Cache.RedisURL)
	} else {
		c.Cache = cache.NewMemory()
		log.Printf("[Container] No REDIS_URL configured, using in-process cache")
	}

	c.Offers = app.NewOfferService(c.GenerationClient, c.Cache, c.OfferRepo,
		cfg.Cache.TTL, cfg.AI.Temperature, cfg.AI.MaxTokens)
	c.Optimizer = app.NewOptimizeService(c.GenerationClient, c.OfferRepo,
		cfg.AI.Temperature, cfg.AI.MaxTokens)
	c.Performance = app.NewPerformanceService(c.OfferRepo)

	return c, nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
