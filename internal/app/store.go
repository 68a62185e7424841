package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/employee"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/cache"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/db"
)

// OpenStore connects the employee repository selected by STORE_DRIVER. The returned
// cleanup releases the underlying connections and is never nil.
func OpenStore(ctx context.Context, cfg *Config, logger *slog.Logger) (employee.Repository, func(), error) {
	switch cfg.StoreDriver {
	case StoreMemory:
		logger.Info("using in-memory employee store")
		return employee.NewMemoryRepository(), func() {}, nil
	case StorePostgres:
		if cfg.PGMigrate {
			if err := db.Migrate(cfg.PGDSN); err != nil {
				return nil, func() {}, err
			}
			logger.Info("database migrations applied")
		}
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("using postgres employee store")
		return employee.NewPostgresRepository(pool), pool.Close, nil
	case StoreRedis:
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("using redis employee store", slog.String("prefix", cfg.RedisPrefix))
		return employee.NewRedisRepository(client, cfg.RedisPrefix), func() { _ = client.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
