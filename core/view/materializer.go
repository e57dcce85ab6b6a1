package view

import (
	"errors"
	"slices"
	"time"

	"stock-terminal/core/query"
	"stock-terminal/core/search"
	"stock-terminal/core/sorting"
	"stock-terminal/core/stock"

	"go.uber.org/zap"
)

// DefaultRowSize is the number of entries per display row.
const DefaultRowSize = 9

// ErrNoLedger is returned by New when Options.Ledger is nil.
var ErrNoLedger = errors.New("view: ledger is required")

// Options wires a Materializer to its collaborators. Only Ledger is
// required; nil sources fall back to fixed defaults (name ascending, all
// items, auto search, no tooltip search, no scrolling). When Pass is set it
// replaces Sources and Sorter on every rebuild.
type Options struct {
	Ledger   *stock.Ledger
	Sort     SortSource
	Scroll   ScrollSource
	Settings SettingsSource
	Sources  search.Sources
	Sorter   *sorting.Registry
	Pass     PassSource
	Assist   SearchAssist
	Observer Observer
	Logger   *zap.Logger
	RowSize  int
}

// params is the set of externally observed knobs compared on each refresh.
type params struct {
	viewMode      ViewMode
	searchMode    SearchMode
	searchText    string
	sortBy        sorting.Key
	sortDir       sorting.Direction
	tooltipSearch bool
}

// Materializer maintains the displayed view over a ledger.
type Materializer struct {
	ledger   *stock.Ledger
	sortSrc  SortSource
	scroll   ScrollSource
	settings SettingsSource
	sources  search.Sources
	sorter   *sorting.Registry
	pass     PassSource
	assist   SearchAssist
	observer Observer
	logger   *zap.Logger

	rowSize    int
	searchText string
	allow      stock.AllowList
	power      bool

	last        params
	lastVersion uint64
	resort      bool
	changed     bool

	view     []stock.Entry
	rebuilds uint64
}

// New creates a Materializer. The first Refresh always rebuilds.
func New(opts Options) (*Materializer, error) {
	if opts.Ledger == nil {
		return nil, ErrNoLedger
	}
	if opts.Sort == nil || opts.Scroll == nil || opts.Settings == nil {
		defaults := NewControls(sorting.KeyName, sorting.Ascending, ViewAll, SearchAuto, false)
		if opts.Sort == nil {
			opts.Sort = defaults
		}
		if opts.Scroll == nil {
			opts.Scroll = defaults
		}
		if opts.Settings == nil {
			opts.Settings = defaults
		}
	}
	if opts.Sorter == nil {
		opts.Sorter = sorting.NewRegistry(opts.Sources.Describer, nil, nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RowSize <= 0 {
		opts.RowSize = DefaultRowSize
	}

	return &Materializer{
		ledger:   opts.Ledger,
		sortSrc:  opts.Sort,
		scroll:   opts.Scroll,
		settings: opts.Settings,
		sources:  opts.Sources,
		sorter:   opts.Sorter,
		pass:     opts.Pass,
		assist:   opts.Assist,
		observer: opts.Observer,
		logger:   opts.Logger,
		rowSize:  opts.RowSize,
		resort:   true,
	}, nil
}

// Refresh evaluates the change-detection state machine and rebuilds the view
// if any tracked parameter, the ledger or the allow list changed since the
// last call. It reports whether a rebuild happened.
func (m *Materializer) Refresh() bool {
	cur := params{
		viewMode:      m.sortSrc.ViewMode(),
		searchMode:    m.settings.SearchMode(),
		searchText:    m.searchText,
		sortBy:        m.sortSrc.SortBy(),
		sortDir:       m.sortSrc.SortDirection(),
		tooltipSearch: m.settings.TooltipSearch(),
	}

	if cur.searchMode.ForwardsToAssist() && m.assist != nil {
		m.assist.SetSearchText(m.searchText)
	}

	if cur != m.last {
		m.resort = true
		m.last = cur
	}

	if v := m.ledger.Version(); v != m.lastVersion {
		m.changed = true
		m.lastVersion = v
	}

	if !m.changed && !m.resort {
		return false
	}
	m.changed = false
	m.resort = false

	m.rebuild(cur)
	return true
}

func (m *Materializer) rebuild(p params) {
	start := time.Now()

	sources, sorter := m.sources, m.sorter
	if m.pass != nil {
		var ps *sorting.Registry
		sources, ps = m.pass.Pass()
		if ps != nil {
			sorter = ps
		}
	}

	q := query.Parse(p.searchText)
	matcher := search.NewMatcher(sources, search.Settings{TooltipSearch: p.tooltipSearch}, m.logger)
	zeroCopy := p.viewMode == ViewCraftable

	next := make([]stock.Entry, 0, len(m.view))
	scanned := 0
	for e := range m.ledger.Iterate() {
		scanned++

		if m.allow != nil && !m.allow.IsListed(e.Identity) {
			continue
		}
		if p.viewMode == ViewCraftable && !e.Craftable {
			continue
		}
		if p.viewMode == ViewStored && e.Quantity == 0 {
			continue
		}
		if !matcher.Match(q, e) {
			continue
		}

		if zeroCopy {
			e = e.ZeroCopy()
		}
		next = append(next, e)
	}

	sorter.Sort(next, p.sortBy, p.sortDir)
	m.view = next
	m.rebuilds++

	elapsed := time.Since(start)
	if m.observer != nil {
		m.observer.ObserveRebuild(elapsed, scanned, len(next))
	}
	m.logger.Debug("view rebuilt",
		zap.Int("entries", scanned),
		zap.Int("view_size", len(next)),
		zap.Stringer("view_mode", p.viewMode),
		zap.Stringer("sort_by", p.sortBy),
		zap.Stringer("sort_dir", p.sortDir),
		zap.Duration("duration", elapsed),
	)
}

// Size returns the number of entries in the current view.
func (m *Materializer) Size() int {
	return len(m.view)
}

// EntryAt translates a display index into a view entry, offset by the
// current scroll position. ok is false when the index is out of range.
func (m *Materializer) EntryAt(displayIndex int) (stock.Entry, bool) {
	idx := displayIndex + m.scroll.CurrentScroll()*m.rowSize
	if idx < 0 || idx >= len(m.view) {
		return stock.Entry{}, false
	}
	return m.view[idx], true
}

// Entries returns a copy of the whole current view.
func (m *Materializer) Entries() []stock.Entry {
	return slices.Clone(m.view)
}

// SetSearchText sets the raw search text. Takes effect on the next Refresh.
func (m *Materializer) SetSearchText(text string) {
	m.searchText = text
}

// SearchText returns the raw search text.
func (m *Materializer) SearchText() string {
	return m.searchText
}

// SetAllowList restricts the view to listed identities. Nil removes the
// restriction.
func (m *Materializer) SetAllowList(list stock.AllowList) {
	m.allow = list
	m.changed = true
}

// Invalidate forces a rebuild on the next Refresh, e.g. after metadata
// changed.
func (m *Materializer) Invalidate() {
	m.changed = true
}

// SetPower records whether the terminal is connected to a powered network.
// It does not affect filtering.
func (m *Materializer) SetPower(powered bool) {
	m.power = powered
}

// HasPower reports the value last passed to SetPower.
func (m *Materializer) HasPower() bool {
	return m.power
}

// RowSize returns the number of entries per display row.
func (m *Materializer) RowSize() int {
	return m.rowSize
}

// SetRowSize sets the number of entries per display row. Values below one
// are ignored.
func (m *Materializer) SetRowSize(n int) {
	if n > 0 {
		m.rowSize = n
	}
}

// Ledger returns the underlying ledger.
func (m *Materializer) Ledger() *stock.Ledger {
	return m.ledger
}

// Rebuilds returns how many times the view has been rebuilt.
func (m *Materializer) Rebuilds() uint64 {
	return m.rebuilds
}
