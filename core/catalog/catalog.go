package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"stock-terminal/core/search"
	"stock-terminal/core/sorting"
	"stock-terminal/core/stock"

	"go.uber.org/zap"
)

// ErrUnknownMod is returned by ModName for mod ids without a definition.
var ErrUnknownMod = errors.New("unknown mod")

// Catalog serves metadata lookups from the current snapshot.
type Catalog struct {
	cache   *Cache
	logger  *zap.Logger
	current atomic.Pointer[Snapshot]
}

// New creates a catalog with an empty snapshot. A nil cache makes Refresh a
// no-op, leaving only the identity fallbacks.
func New(cache *Cache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{cache: cache, logger: logger}
	c.current.Store(NewSnapshot())
	return c
}

// NewStatic creates a catalog serving a fixed snapshot.
func NewStatic(snap *Snapshot) *Catalog {
	c := New(nil, nil)
	if snap != nil {
		c.current.Store(snap)
	}
	return c
}

// Refresh replaces the current snapshot with the cached one. On failure the
// previous snapshot stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	snap, err := c.cache.Get(ctx)
	if err != nil {
		c.logger.Warn("catalog refresh failed", zap.Error(err))
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}
	c.current.Store(snap)
	return nil
}

// Reload invalidates the cache and refreshes.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.cache != nil {
		c.cache.Invalidate()
	}
	return c.Refresh(ctx)
}

// Snapshot returns the snapshot currently in use.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Len returns the number of item definitions.
func (c *Catalog) Len() int {
	return c.Snapshot().Len()
}

// Sources bundles the catalog as search collaborators. Every lookup reads
// the snapshot current at the time of the call; use Pin for a fixed one.
func (c *Catalog) Sources() search.Sources {
	return search.Sources{Describer: c, Mods: c, Resolver: c, Tags: c}
}

// Pin returns a Lens over the current snapshot. Later refreshes do not
// affect it.
func (c *Catalog) Pin() *Lens {
	return &Lens{snap: c.Snapshot()}
}

// DisplayName implements search.Describer.
func (c *Catalog) DisplayName(id stock.Identity) string {
	return c.Pin().DisplayName(id)
}

// ModID implements search.Describer.
func (c *Catalog) ModID(id stock.Identity) string {
	return c.Pin().ModID(id)
}

// Tooltip implements search.Describer.
func (c *Catalog) Tooltip(id stock.Identity) []string {
	return c.Pin().Tooltip(id)
}

// ModName implements search.ModRegistry.
func (c *Catalog) ModName(modID string) (string, error) {
	return c.Pin().ModName(modID)
}

// Resolve implements search.Resolver.
func (c *Catalog) Resolve(id stock.Identity) (search.Item, search.Resolution) {
	return c.Pin().Resolve(id)
}

// Tags implements search.TagRegistry.
func (c *Catalog) Tags(item search.Item) ([]string, error) {
	return c.Pin().Tags(item)
}

// OrderStrategy returns the custom order of the current snapshot, or nil
// when it defines no order.
func (c *Catalog) OrderStrategy() sorting.Strategy {
	return c.Pin().OrderStrategy()
}

// Lens serves metadata lookups from a single snapshot.
type Lens struct {
	snap *Snapshot
}

// Sources bundles the lens as search collaborators.
func (l *Lens) Sources() search.Sources {
	return search.Sources{Describer: l, Mods: l, Resolver: l, Tags: l}
}

// lookup finds the exact definition, then the generic one.
func (l *Lens) lookup(id stock.Identity) (ItemDef, search.Resolution) {
	if def, ok := l.snap.Items[id]; ok {
		return def, search.Resolved
	}
	if id.Variant != "" {
		if def, ok := l.snap.Items[id.Generic()]; ok {
			return def, search.FallbackResolved
		}
	}
	return ItemDef{}, search.Unresolved
}

// DisplayName falls back to the item id.
func (l *Lens) DisplayName(id stock.Identity) string {
	if def, res := l.lookup(id); res != search.Unresolved && def.Name != "" {
		return def.Name
	}
	return id.Item
}

// ModID falls back to the namespace of the item id.
func (l *Lens) ModID(id stock.Identity) string {
	if def, res := l.lookup(id); res != search.Unresolved && def.ModID != "" {
		return def.ModID
	}
	return search.Namespace(id.Item)
}

func (l *Lens) Tooltip(id stock.Identity) []string {
	def, _ := l.lookup(id)
	return def.Tooltip
}

// ModName returns ErrUnknownMod for mods without a definition.
func (l *Lens) ModName(modID string) (string, error) {
	name, ok := l.snap.Mods[modID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMod, modID)
	}
	return name, nil
}

func (l *Lens) Resolve(id stock.Identity) (search.Item, search.Resolution) {
	def, res := l.lookup(id)
	if res == search.Unresolved {
		return search.Item{}, res
	}
	registry := def.RegistryID
	if registry == "" {
		registry = def.Item
	}
	return search.Item{Identity: def.Identity(), RegistryName: registry}, res
}

func (l *Lens) Tags(item search.Item) ([]string, error) {
	if item.IsEmpty() {
		return nil, nil
	}
	def, _ := l.lookup(item.Identity)
	return def.Tags, nil
}

// OrderStrategy orders entries by their catalog Order, entries without a
// definition last. It is nil when no definition sets an Order.
func (l *Lens) OrderStrategy() sorting.Strategy {
	ordered := false
	for _, def := range l.snap.Items {
		if def.Order != 0 {
			ordered = true
			break
		}
	}
	if !ordered {
		return nil
	}
	return sorting.StrategyFunc(func(a, b stock.Entry) int {
		return cmp.Compare(l.order(a.Identity), l.order(b.Identity))
	})
}

func (l *Lens) order(id stock.Identity) int {
	if def, res := l.lookup(id); res != search.Unresolved {
		return def.Order
	}
	return math.MaxInt
}
