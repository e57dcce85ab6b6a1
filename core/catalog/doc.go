// Package catalog supplies the item metadata used by search and sorting.
//
// A Catalog holds an immutable Snapshot of item definitions and mod names
// and implements the collaborator interfaces of the search package
// (Describer, ModRegistry, Resolver, TagRegistry). Snapshots are built from
// one or more Sources:
//
//   - DatabaseSource reads the catalog_items and catalog_mods tables through GORM.
//   - ObjectSource reads a JSON document from object storage.
//
// # Caching
//
// Sources are loaded concurrently by a Cache and merged in registration
// order, so a later source overrides an earlier one for the same identity or
// mod id. The merged snapshot is kept for the configured TTL. Concurrent
// loads of an expired cache are collapsed into one with singleflight.
//
// # Resolution
//
// Lookups try the exact identity first and then the generic identity (same
// item, empty variant). Identities unknown to the catalog fall back to the
// item id as display name and its namespace as mod id.
//
// # Usage
//
//	cache, err := catalog.NewCache(5*time.Minute, logger, catalog.NewDatabaseSource(db))
//	cat := catalog.New(cache, logger)
//	if err := cat.Refresh(ctx); err != nil {
//	    logger.Warn("catalog refresh failed", zap.Error(err))
//	}
package catalog
