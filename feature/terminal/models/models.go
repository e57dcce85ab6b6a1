package models

// Identity names one item kind.
type Identity struct {
	Item    string `json:"item"`
	Variant string `json:"variant,omitempty"`
}

// StockDelta is the latest reported state of one identity.
type StockDelta struct {
	Item      string `json:"item"`
	Variant   string `json:"variant,omitempty"`
	Amount    int64  `json:"amount"`
	Craftable bool   `json:"craftable"`
}

// UpsertResponse reports the outcome of a stock update.
type UpsertResponse struct {
	Applied int `json:"applied"`
	Entries int `json:"entries"`
}

// QuantityResponse is the stored quantity of one identity.
type QuantityResponse struct {
	Item     string `json:"item"`
	Variant  string `json:"variant,omitempty"`
	Quantity int64  `json:"quantity"`
}

// AllowListRequest replaces the allow list. No entries clears it.
type AllowListRequest struct {
	Entries []Identity `json:"entries"`
	// Fuzzy ignores variants when matching.
	Fuzzy bool `json:"fuzzy"`
}

// SettingsRequest updates any subset of the terminal settings.
type SettingsRequest struct {
	Search        *string `json:"search,omitempty"`
	SortBy        *string `json:"sort_by,omitempty"`
	SortDir       *string `json:"sort_dir,omitempty"`
	ViewMode      *string `json:"view_mode,omitempty"`
	SearchMode    *string `json:"search_mode,omitempty"`
	TooltipSearch *bool   `json:"tooltip_search,omitempty"`
	Scroll        *int    `json:"scroll,omitempty"`
	RowWidth      *int    `json:"row_width,omitempty"`
}

// Settings is the current terminal configuration.
type Settings struct {
	Search        string `json:"search"`
	SortBy        string `json:"sort_by"`
	SortDir       string `json:"sort_dir"`
	ViewMode      string `json:"view_mode"`
	SearchMode    string `json:"search_mode"`
	TooltipSearch bool   `json:"tooltip_search"`
	Scroll        int    `json:"scroll"`
	RowWidth      int    `json:"row_width"`
}

// PowerRequest sets the network power state.
type PowerRequest struct {
	Powered bool `json:"powered"`
}

// ViewEntry is one displayed cell.
type ViewEntry struct {
	Slot      int    `json:"slot"`
	Item      string `json:"item"`
	Variant   string `json:"variant,omitempty"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Craftable bool   `json:"craftable"`
}

// ViewResponse is the visible window of the view.
type ViewResponse struct {
	Size     int         `json:"size"`
	Powered  bool        `json:"powered"`
	Rebuilds uint64      `json:"rebuilds"`
	RowWidth int         `json:"row_width"`
	Scroll   int         `json:"scroll"`
	Entries  []ViewEntry `json:"entries"`
}

// CatalogResponse reports a catalog reload.
type CatalogResponse struct {
	Items int `json:"items"`
}
