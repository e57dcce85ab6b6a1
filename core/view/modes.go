package view

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrUnknownViewMode   = errors.New("unknown view mode")
	ErrUnknownSearchMode = errors.New("unknown search mode")
)

// ViewMode selects which entries are eligible by quantity and craftability.
type ViewMode int

const (
	// ViewAll shows every entry.
	ViewAll ViewMode = iota
	// ViewStored hides entries with zero quantity.
	ViewStored
	// ViewCraftable shows only craftable entries, at zero quantity.
	ViewCraftable
)

func (m ViewMode) String() string {
	switch m {
	case ViewStored:
		return "stored"
	case ViewCraftable:
		return "craftable"
	default:
		return "all"
	}
}

// ParseViewMode parses the String form of a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return ViewAll, nil
	case "stored":
		return ViewStored, nil
	case "craftable":
		return ViewCraftable, nil
	}
	return ViewAll, fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
}

// SearchMode governs how the search box behaves and whether the raw search
// text is forwarded to a search-assist integration.
type SearchMode int

const (
	SearchAuto SearchMode = iota
	SearchManual
	SearchAutoKeep
	SearchManualKeep
	SearchAssistAuto
	SearchAssistManual
	SearchAssistAutoKeep
	SearchAssistManualKeep
)

var searchModeNames = map[SearchMode]string{
	SearchAuto:             "auto",
	SearchManual:           "manual",
	SearchAutoKeep:         "auto_keep",
	SearchManualKeep:       "manual_keep",
	SearchAssistAuto:       "assist_auto",
	SearchAssistManual:     "assist_manual",
	SearchAssistAutoKeep:   "assist_auto_keep",
	SearchAssistManualKeep: "assist_manual_keep",
}

func (m SearchMode) String() string {
	if s, ok := searchModeNames[m]; ok {
		return s
	}
	return searchModeNames[SearchAuto]
}

// ParseSearchMode parses the String form of a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SearchAuto, nil
	}
	for m, name := range searchModeNames {
		if name == s {
			return m, nil
		}
	}
	return SearchAuto, fmt.Errorf("%w: %q", ErrUnknownSearchMode, s)
}

// ForwardsToAssist reports whether the raw text is passed to the
// search-assist integration on every refresh.
func (m SearchMode) ForwardsToAssist() bool {
	switch m {
	case SearchAssistAuto, SearchAssistManual, SearchAssistAutoKeep, SearchAssistManualKeep:
		return true
	}
	return false
}

// KeepsText reports whether the search text survives closing the terminal.
func (m SearchMode) KeepsText() bool {
	switch m {
	case SearchAutoKeep, SearchManualKeep, SearchAssistAutoKeep, SearchAssistManualKeep:
		return true
	}
	return false
}
