package view

import (
	"fmt"

	"stock-terminal/core/sorting"
)

// Config holds the initial search and display settings.
type Config struct {
	// Mode is the search mode (auto, manual, auto_keep, ... assist_manual_keep).
	Mode string `mapstructure:"mode" default:"auto"`
	// ViewMode is all, stored or craftable.
	ViewMode string `mapstructure:"view_mode" default:"all"`
	// SortBy is name, mod, amount or custom.
	SortBy string `mapstructure:"sort_by" default:"name"`
	// SortDir is ascending or descending.
	SortDir string `mapstructure:"sort_dir" default:"ascending"`
	// TooltipSearch makes plain terms also search tooltips.
	TooltipSearch bool `mapstructure:"tooltip_search" default:"false"`
}

// Controls parses the configuration into a Controls value.
func (c Config) Controls() (*Controls, error) {
	mode, err := ParseSearchMode(c.Mode)
	if err != nil {
		return nil, fmt.Errorf("search.mode: %w", err)
	}
	viewMode, err := ParseViewMode(c.ViewMode)
	if err != nil {
		return nil, fmt.Errorf("search.view_mode: %w", err)
	}
	sortBy, err := sorting.ParseKey(c.SortBy)
	if err != nil {
		return nil, fmt.Errorf("search.sort_by: %w", err)
	}
	sortDir, err := sorting.ParseDirection(c.SortDir)
	if err != nil {
		return nil, fmt.Errorf("search.sort_dir: %w", err)
	}
	return NewControls(sortBy, sortDir, viewMode, mode, c.TooltipSearch), nil
}
