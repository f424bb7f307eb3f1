package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vakeel-api/internal/config"
	"vakeel-api/internal/db"
)

// Open elige el backend una sola vez al arrancar. Sin DATABASE_URL, o si la
// base no responde, devuelve un MemoryStore; no hay failover por request.
// Un error de migraciones sobre una base alcanzable si se propaga.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, func(), error) {
	if !cfg.DurableStorageConfigured() {
		logger.Warn("DATABASE_URL not set, running with in-memory storage (data is lost on restart)")
		return NewMemoryStore(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Warn("durable store unreachable, running with in-memory storage", zap.Error(err))
		return NewMemoryStore(), func() {}, nil
	}

	if cfg.DBAutoMigrate {
		version, err := db.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate durable store: %w", err)
		}
		logger.Info("migrations applied", zap.Uint("version", version))
	}

	logger.Info("using durable storage", zap.String("mode", ModePostgres))
	return NewPgStore(pool), pool.Close, nil
}
