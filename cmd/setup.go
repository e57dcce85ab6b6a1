package cmd

import (
	"context"
	"fmt"

	"stock-terminal/core/catalog"
	"stock-terminal/core/config"
	"stock-terminal/core/database"
	"stock-terminal/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// buildCatalog creates the catalog selected by the configuration and loads
// it once. Load failures are logged and leave the identity fallbacks in
// place.
func buildCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Source == catalog.SourceNone {
		logg.Info("Catalog disabled, using item ids as names")
		return catalog.New(nil, logg), nil
	}

	var db *gorm.DB
	if cfg.Catalog.Source == catalog.SourceDatabase || cfg.Catalog.Source == catalog.SourceBoth {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		}
	}

	var client storage.Client
	if cfg.Catalog.Source == catalog.SourceStorage || cfg.Catalog.Source == catalog.SourceBoth {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	sources, err := catalog.BuildSources(cfg.Catalog, db, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	cache, err := catalog.NewCache(cfg.Catalog.CacheTTL(), logg, sources...)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(cache, logg)
	if err := cat.Refresh(ctx); err != nil {
		logg.Warn("Initial catalog load failed", zap.Error(err))
	} else {
		logg.Info("Catalog loaded", zap.Int("items", cat.Len()))
	}
	return cat, nil
}
