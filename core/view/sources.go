package view

import (
	"sync"
	"time"

	"stock-terminal/core/search"
	"stock-terminal/core/sorting"
)

// SortSource supplies the sort and view selections. Polled once per refresh.
type SortSource interface {
	SortBy() sorting.Key
	SortDirection() sorting.Direction
	ViewMode() ViewMode
}

// ScrollSource supplies the current scroll offset in rows.
type ScrollSource interface {
	CurrentScroll() int
}

// SettingsSource supplies global search settings. Polled once per refresh.
type SettingsSource interface {
	SearchMode() SearchMode
	TooltipSearch() bool
}

// SearchAssist receives the raw search text. Calls must not block.
type SearchAssist interface {
	SetSearchText(text string)
}

// PassSource supplies the metadata collaborators for one rebuild. It is
// called once at the start of every rebuild, and the returned values are
// used for the whole pass.
type PassSource interface {
	Pass() (search.Sources, *sorting.Registry)
}

// Observer is notified after every rebuild.
type Observer interface {
	ObserveRebuild(elapsed time.Duration, scanned, size int)
}

// Controls is a mutable, lock-guarded implementation of SortSource,
// ScrollSource and SettingsSource. It can be updated from any goroutine.
type Controls struct {
	mu            sync.RWMutex
	sortBy        sorting.Key
	sortDir       sorting.Direction
	viewMode      ViewMode
	searchMode    SearchMode
	tooltipSearch bool
	scroll        int
}

// NewControls creates controls with the given initial settings.
func NewControls(sortBy sorting.Key, sortDir sorting.Direction, viewMode ViewMode, searchMode SearchMode, tooltipSearch bool) *Controls {
	return &Controls{
		sortBy:        sortBy,
		sortDir:       sortDir,
		viewMode:      viewMode,
		searchMode:    searchMode,
		tooltipSearch: tooltipSearch,
	}
}

func (c *Controls) SortBy() sorting.Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortBy
}

func (c *Controls) SortDirection() sorting.Direction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortDir
}

func (c *Controls) ViewMode() ViewMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewMode
}

func (c *Controls) SearchMode() SearchMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchMode
}

func (c *Controls) TooltipSearch() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tooltipSearch
}

func (c *Controls) CurrentScroll() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scroll
}

func (c *Controls) SetSortBy(k sorting.Key) {
	c.mu.Lock()
	c.sortBy = k
	c.mu.Unlock()
}

func (c *Controls) SetSortDirection(d sorting.Direction) {
	c.mu.Lock()
	c.sortDir = d
	c.mu.Unlock()
}

func (c *Controls) SetViewMode(m ViewMode) {
	c.mu.Lock()
	c.viewMode = m
	c.mu.Unlock()
}

func (c *Controls) SetSearchMode(m SearchMode) {
	c.mu.Lock()
	c.searchMode = m
	c.mu.Unlock()
}

func (c *Controls) SetTooltipSearch(on bool) {
	c.mu.Lock()
	c.tooltipSearch = on
	c.mu.Unlock()
}

// SetScroll sets the scroll offset; negative values are clamped to zero.
func (c *Controls) SetScroll(rows int) {
	c.mu.Lock()
	c.scroll = max(rows, 0)
	c.mu.Unlock()
}
