// Package bootstrap opens the storage selected by configuration.
package bootstrap

import (
	"errors"
	"fmt"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logging"
	"storefront/internal/migrations"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/internal/store"
	"time"

	"go.uber.org/zap"
)

// Resources holds every open storage handle. Close releases them in reverse
// order of opening.
type Resources struct {
	Store   *store.Store
	Carts   services.CartStore
	closers []func() error
}

// Open connects the collection backend (running migrations for SQL drivers)
// and the cart session store.
func Open(cfg *config.Config, logger *zap.Logger) (*Resources, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := &Resources{}
	var redisClient *redis.Client

	connectRedis := func() (*redis.Client, error) {
		if redisClient != nil {
			return redisClient, nil
		}
		client, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		redisClient = client
		res.closers = append(res.closers, client.Close)
		return client, nil
	}

	var backend store.Backend
	switch cfg.StoreDriver {
	case "sqlite", "postgres":
		db, err := database.Initialize(cfg.StoreDriver, cfg.StoreDSN(), logging.GormLevel(cfg.LogLevel))
		if err != nil {
			return nil, err
		}
		res.closers = append(res.closers, func() error { return database.Close(db) })
		if err := migrations.RunMigrations(db, logger); err != nil {
			res.Close()
			return nil, err
		}
		backend = repository.NewCollectionRepository(db)
	case "redis":
		client, err := connectRedis()
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
	res.Store = store.New(backend, logger)
	logger.Info("Store opened", zap.String("driver", cfg.StoreDriver))

	ttl := time.Duration(cfg.CartTTL) * time.Second
	switch cfg.CartStore {
	case "redis":
		client, err := connectRedis()
		if err != nil {
			res.Close()
			return nil, err
		}
		res.Carts = client.Carts(ttl)
	default:
		res.Carts = services.NewMemoryCartStore(ttl)
	}

	return res, nil
}

func (r *Resources) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
