// Package storage opens the configured repository.Store backend.
package storage

import (
	"context"
	"fmt"

	"github.com/BloggingApp/comment-service/internal/config"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/postgres"
	"github.com/BloggingApp/comment-service/internal/repository/sqlite"
)

func Open(ctx context.Context, cfg config.StorageConfig) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverSQLite, "":
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
