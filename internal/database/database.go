// Package database provides the PostgreSQL connection pool for the API server.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlertours/backend/internal/domain"
)

// NewPool creates a pgxpool connection pool for the given connection string.
// Returns domain.ErrNotConfigured when databaseURL is empty, so callers can
// report service unavailable before any storage operation is attempted.
//
// Connections past their idle or lifetime limits are recycled by the pool
// instead of being handed to callers, so a stale connection never surfaces
// as a usable handle.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, domain.ErrNotConfigured
	}

	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: parse config: %w", err)
	}

	// Sensible pool defaults for a small service.
	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: %w", err)
	}

	return pool, nil
}
