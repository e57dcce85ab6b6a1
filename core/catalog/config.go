package catalog

import (
	"fmt"
	"time"

	"stock-terminal/core/storage"

	"gorm.io/gorm"
)

// Source kinds accepted by Config.Source.
const (
	SourceDatabase = "database"
	SourceStorage  = "storage"
	SourceBoth     = "both"
	SourceNone     = "none"
)

// Config holds configuration for the item catalog.
type Config struct {
	// Source selects the backing stores (database, storage, both, none).
	Source string `mapstructure:"source" default:"database"`
	// ObjectName is the catalog JSON object read from the storage bucket.
	ObjectName string `mapstructure:"object_name" default:"catalog/items.json"`
	// CacheTTLSeconds is how long a loaded catalog is reused.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns the cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(max(c.CacheTTLSeconds, 0)) * time.Second
}

// BuildSources returns the sources selected by cfg. With "both" the storage
// document overrides database rows. "none" returns no sources.
func BuildSources(cfg Config, db *gorm.DB, client storage.Client, bucket string) ([]Source, error) {
	switch cfg.Source {
	case SourceNone:
		return nil, nil
	case SourceDatabase, "":
		return []Source{NewDatabaseSource(db)}, nil
	case SourceStorage:
		return []Source{NewObjectSource(client, bucket, cfg.ObjectName)}, nil
	case SourceBoth:
		return []Source{
			NewDatabaseSource(db),
			NewObjectSource(client, bucket, cfg.ObjectName),
		}, nil
	}
	return nil, fmt.Errorf("unknown catalog source: %s", cfg.Source)
}
