package terminal

import (
	"context"
	"fmt"
	"sync"

	"stock-terminal/core/catalog"
	"stock-terminal/core/metrics"
	"stock-terminal/core/search"
	"stock-terminal/core/sorting"
	"stock-terminal/core/stock"
	"stock-terminal/core/view"
	"stock-terminal/feature/terminal/models"

	"go.uber.org/zap"
)

// Options configures a Service. Every field is optional.
type Options struct {
	Catalog  *catalog.Catalog
	Controls *view.Controls
	Assist   view.SearchAssist
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	RowWidth int

	// CustomSort is an integration ordering for the custom sort key. Without
	// one the catalog order applies, and without that the name order.
	CustomSort sorting.Strategy
}

// Service is a single stock terminal.
type Service struct {
	mu       sync.Mutex
	ledger   *stock.Ledger
	view     *view.Materializer
	controls *view.Controls
	catalog  *catalog.Catalog
	metrics  *metrics.Metrics
	logger   *zap.Logger

	customSort sorting.Strategy
	// lens is the catalog state of the last rebuild, guarded by mu.
	lens *catalog.Lens
}

// NewService creates a terminal with an empty ledger.
func NewService(opts Options) (*Service, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New(nil, opts.Logger)
	}
	if opts.Controls == nil {
		opts.Controls = view.NewControls(sorting.KeyName, sorting.Ascending, view.ViewAll, view.SearchAuto, false)
	}

	s := &Service{
		ledger:     stock.NewLedger(),
		controls:   opts.Controls,
		catalog:    opts.Catalog,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		customSort: opts.CustomSort,
	}

	vopts := view.Options{
		Ledger:   s.ledger,
		Sort:     opts.Controls,
		Scroll:   opts.Controls,
		Settings: opts.Controls,
		Pass:     s,
		Assist:   opts.Assist,
		Logger:   opts.Logger,
		RowSize:  opts.RowWidth,
	}
	if opts.Metrics != nil {
		vopts.Observer = opts.Metrics
	}

	m, err := view.New(vopts)
	if err != nil {
		return nil, fmt.Errorf("failed to create view: %w", err)
	}
	s.view = m
	return s, nil
}

// Pass pins the catalog for one view rebuild. The materializer calls it
// while s.mu is held.
func (s *Service) Pass() (search.Sources, *sorting.Registry) {
	s.lens = s.catalog.Pin()
	return s.lens.Sources(), sorting.NewRegistry(s.lens, s.customSort, s.lens.OrderStrategy())
}

// ApplyDeltas validates every delta and then upserts them in order.
// Nothing is applied if any delta is invalid.
func (s *Service) ApplyDeltas(deltas []stock.Delta) (int, error) {
	for i, d := range deltas {
		if err := d.Identity.Validate(); err != nil {
			return 0, fmt.Errorf("delta %d: %w", i, err)
		}
	}
	for _, d := range deltas {
		if err := s.ledger.Upsert(d); err != nil {
			return 0, err
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveUpserts(len(deltas), s.ledger.Len())
	}
	return len(deltas), nil
}

// Reset clears all stock.
func (s *Service) Reset() {
	s.ledger.ResetAll()
	if s.metrics != nil {
		s.metrics.SetLedgerEntries(0)
	}
}

// Quantity returns the stored quantity of id.
func (s *Service) Quantity(id stock.Identity) int64 {
	return s.ledger.QuantityOf(id)
}

// Entries returns the number of identities in the ledger.
func (s *Service) Entries() int {
	return s.ledger.Len()
}

// SetAllowList restricts the view to ids. An empty list removes the
// restriction.
func (s *Service) SetAllowList(ids []stock.Identity, fuzzy bool) {
	var list stock.AllowList
	if fuzzy {
		list = stock.NewFuzzyAllowList(ids...)
	} else {
		list = stock.NewAllowList(ids...)
	}

	s.mu.Lock()
	s.view.SetAllowList(list)
	s.mu.Unlock()
}

// UpdateSettings parses every field of req before applying any of them.
func (s *Service) UpdateSettings(req models.SettingsRequest) error {
	var (
		sortBy     sorting.Key
		sortDir    sorting.Direction
		viewMode   view.ViewMode
		searchMode view.SearchMode
		err        error
	)
	if req.SortBy != nil {
		if sortBy, err = sorting.ParseKey(*req.SortBy); err != nil {
			return err
		}
	}
	if req.SortDir != nil {
		if sortDir, err = sorting.ParseDirection(*req.SortDir); err != nil {
			return err
		}
	}
	if req.ViewMode != nil {
		if viewMode, err = view.ParseViewMode(*req.ViewMode); err != nil {
			return err
		}
	}
	if req.SearchMode != nil {
		if searchMode, err = view.ParseSearchMode(*req.SearchMode); err != nil {
			return err
		}
	}
	if req.RowWidth != nil && *req.RowWidth < 1 {
		return fmt.Errorf("row width must be at least 1, got %d", *req.RowWidth)
	}

	if req.SortBy != nil {
		s.controls.SetSortBy(sortBy)
	}
	if req.SortDir != nil {
		s.controls.SetSortDirection(sortDir)
	}
	if req.ViewMode != nil {
		s.controls.SetViewMode(viewMode)
	}
	if req.SearchMode != nil {
		s.controls.SetSearchMode(searchMode)
	}
	if req.TooltipSearch != nil {
		s.controls.SetTooltipSearch(*req.TooltipSearch)
	}
	if req.Scroll != nil {
		s.controls.SetScroll(*req.Scroll)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Search != nil {
		s.view.SetSearchText(*req.Search)
	}
	if req.RowWidth != nil {
		s.view.SetRowSize(*req.RowWidth)
	}
	return nil
}

// Settings returns the current settings.
func (s *Service) Settings() models.Settings {
	s.mu.Lock()
	text, rowWidth := s.view.SearchText(), s.view.RowSize()
	s.mu.Unlock()

	return models.Settings{
		Search:        text,
		SortBy:        s.controls.SortBy().String(),
		SortDir:       s.controls.SortDirection().String(),
		ViewMode:      s.controls.ViewMode().String(),
		SearchMode:    s.controls.SearchMode().String(),
		TooltipSearch: s.controls.TooltipSearch(),
		Scroll:        s.controls.CurrentScroll(),
		RowWidth:      rowWidth,
	}
}

// SetPower records the network power state.
func (s *Service) SetPower(powered bool) {
	s.mu.Lock()
	s.view.SetPower(powered)
	s.mu.Unlock()
}

// Close ends the terminal session. The search text is cleared unless the
// search mode keeps it.
func (s *Service) Close() {
	if s.controls.SearchMode().KeepsText() {
		return
	}
	s.mu.Lock()
	s.view.SetSearchText("")
	s.mu.Unlock()
}

// View refreshes the view and returns rows display rows starting at the
// current scroll position. rows <= 0 returns everything from there on.
func (s *Service) View(rows int) models.ViewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Refresh()
	lens := s.lens
	if lens == nil {
		lens = s.catalog.Pin()
	}

	rowWidth := s.view.RowSize()
	limit := s.view.Size()
	if rows > 0 {
		limit = rows * rowWidth
	}

	resp := models.ViewResponse{
		Size:     s.view.Size(),
		Powered:  s.view.HasPower(),
		Rebuilds: s.view.Rebuilds(),
		RowWidth: rowWidth,
		Scroll:   s.controls.CurrentScroll(),
		Entries:  make([]models.ViewEntry, 0, min(limit, s.view.Size())),
	}
	for slot := range limit {
		e, ok := s.view.EntryAt(slot)
		if !ok {
			break
		}
		resp.Entries = append(resp.Entries, models.ViewEntry{
			Slot:      slot,
			Item:      e.Identity.Item,
			Variant:   e.Identity.Variant,
			Name:      lens.DisplayName(e.Identity),
			Quantity:  e.Quantity,
			Craftable: e.Craftable,
		})
	}
	return resp
}

// RefreshCatalog reloads item metadata and forces a view rebuild.
func (s *Service) RefreshCatalog(ctx context.Context) (int, error) {
	if err := s.catalog.Reload(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.view.Invalidate()
	s.mu.Unlock()

	n := s.catalog.Len()
	s.logger.Info("Catalog reloaded", zap.Int("items", n))
	return n, nil
}
