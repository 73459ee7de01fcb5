package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-tracker/internal/platform/config"
)

// pingTimeout bounds the startup connectivity check. Startup is fatal on
// failure, so the bound keeps a dead database from hanging the process.
const pingTimeout = 10 * time.Second

// OpenPool parses the configured DSN, applies pool sizing, connects, and
// verifies connectivity with a bounded ping. The returned pool is the single
// shared persistence handle for the process lifetime.
func OpenPool(ctx context.Context, cfg config.StorageConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return pool, nil
}
