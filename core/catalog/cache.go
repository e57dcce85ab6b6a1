package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoSources is returned by NewCache when no source is given.
var ErrNoSources = errors.New("catalog: at least one source is required")

const cacheKey = "catalog"

// Cache loads and merges snapshots from its sources and keeps the result
// for a fixed TTL.
type Cache struct {
	sources []Source
	ttl     time.Duration
	logger  *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	built    time.Time
	sf       singleflight.Group
}

// NewCache creates a cache over sources. A zero ttl reloads on every Get.
func NewCache(ttl time.Duration, logger *zap.Logger, sources ...Source) (*Cache, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{sources: sources, ttl: ttl, logger: logger}, nil
}

// isExpired must be called with mu held.
func (c *Cache) isExpired() bool {
	if c.snapshot == nil || c.ttl == 0 {
		return true
	}
	return time.Since(c.built) > c.ttl
}

// Get returns the cached snapshot, loading it when missing or expired.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap, expired := c.snapshot, c.isExpired()
	c.mu.RUnlock()
	if !expired {
		return snap, nil
	}

	result, err, _ := c.sf.Do(cacheKey, func() (any, error) {
		c.mu.RLock()
		snap, expired := c.snapshot, c.isExpired()
		c.mu.RUnlock()
		if !expired {
			return snap, nil
		}

		fresh, err := c.Build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshot = fresh
		c.built = time.Now()
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Build loads every source concurrently and merges the results in source
// order. It does not store the result.
func (c *Cache) Build(ctx context.Context) (*Snapshot, error) {
	var (
		snaps = make([]*Snapshot, len(c.sources))
		errs  = make([]error, len(c.sources))
		wg    sync.WaitGroup
	)

	for i, src := range c.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			snaps[i], errs[i] = src.Load(ctx)
			if errs[i] == nil {
				c.logger.Info("catalog source loaded",
					zap.String("source", src.Name()),
					zap.Int("items", snaps[i].Len()),
					zap.Duration("duration", time.Since(start)),
				)
			}
		}()
	}
	wg.Wait()

	merged := NewSnapshot()
	for i, src := range c.sources {
		if errs[i] != nil {
			return nil, fmt.Errorf("catalog source %s: %w", src.Name(), errs[i])
		}
		merged.Merge(snaps[i])
	}
	return merged, nil
}

// Invalidate drops the cached snapshot so the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}
