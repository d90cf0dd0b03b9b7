package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/catalog"
	"github.com/jask/shopfront/internal/config"
	"github.com/jask/shopfront/internal/database"
	"github.com/jask/shopfront/internal/database/repository"
)

// openSource builds the configured catalog collaborator. The returned func
// releases whatever it holds.
func openSource(ctx context.Context, cfg config.Config, log *zap.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourceHTTP:
		src := catalog.NewHTTPSource(catalog.HTTPConfig{
			BaseURL:           cfg.Catalog.BaseURL,
			Timeout:           cfg.Catalog.Timeout,
			RetryCount:        cfg.Catalog.RetryCount,
			RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
		}, log)
		return src, func() { _ = src.Close() }, nil
	case config.SourceLocal:
		db, err := openLocalDB(ctx, cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		src := &catalog.LocalSource{
			Categories: repository.NewCategoryRepo(db),
			Products:   repository.NewProductRepo(db),
		}
		return src, func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Catalog.Source)
}

// openLocalDB migrates, opens and seeds the sqlite catalog at path.
func openLocalDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}
