package catalog

import (
	"maps"

	"stock-terminal/core/stock"
)

// ItemDef is the catalog definition of one item identity.
type ItemDef struct {
	Item       string   `json:"item"`
	Variant    string   `json:"variant,omitempty"`
	Name       string   `json:"name"`
	ModID      string   `json:"mod,omitempty"`
	Tooltip    []string `json:"tooltip,omitempty"`
	RegistryID string   `json:"registry_id,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	// Order is the position used by the custom sort. Lower sorts first.
	Order int `json:"order,omitempty"`
}

// Identity returns the stock identity the definition describes.
func (d ItemDef) Identity() stock.Identity {
	return stock.Identity{Item: d.Item, Variant: d.Variant}
}

// ModDef is the catalog definition of a mod.
type ModDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is an immutable set of item and mod definitions.
type Snapshot struct {
	Items map[stock.Identity]ItemDef
	Mods  map[string]string
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Items: make(map[stock.Identity]ItemDef),
		Mods:  make(map[string]string),
	}
}

// AddItem stores def, replacing any definition with the same identity.
// Definitions without an item id are ignored.
func (s *Snapshot) AddItem(def ItemDef) {
	if def.Item == "" {
		return
	}
	s.Items[def.Identity()] = def
}

// AddMod stores a mod name, replacing any previous one.
func (s *Snapshot) AddMod(id, name string) {
	if id == "" {
		return
	}
	s.Mods[id] = name
}

// Merge copies every definition of other into s. Definitions of other win.
func (s *Snapshot) Merge(other *Snapshot) {
	if other == nil {
		return
	}
	maps.Copy(s.Items, other.Items)
	maps.Copy(s.Mods, other.Mods)
}

// Len returns the number of item definitions.
func (s *Snapshot) Len() int {
	return len(s.Items)
}
