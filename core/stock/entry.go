package stock

import (
	"errors"
	"strings"
)

// ErrInvalidIdentity is returned when an identity has no item id.
var ErrInvalidIdentity = errors.New("identity must have an item id")

// Identity distinguishes one item kind from another.
// Item is the registry-style id (e.g. "minecraft:iron_ingot") and Variant
// carries any kind-distinguishing metadata such as damage or a hash of
// attached data. The zero Variant denotes the generic form of the item.
type Identity struct {
	Item    string `json:"item"`
	Variant string `json:"variant,omitempty"`
}

// Validate checks that the identity names an item.
func (id Identity) Validate() error {
	if strings.TrimSpace(id.Item) == "" {
		return ErrInvalidIdentity
	}
	return nil
}

// Generic returns the identity with its variant stripped.
func (id Identity) Generic() Identity {
	return Identity{Item: id.Item}
}

// Compare orders identities by item, then variant.
func (id Identity) Compare(other Identity) int {
	if c := strings.Compare(id.Item, other.Item); c != 0 {
		return c
	}
	return strings.Compare(id.Variant, other.Variant)
}

func (id Identity) String() string {
	if id.Variant == "" {
		return id.Item
	}
	return id.Item + "#" + id.Variant
}

// Entry is one distinct item kind and its current quantity.
// Entries handed out by the Ledger are copies; mutating them never changes
// the ledger.
type Entry struct {
	Identity  Identity `json:"identity"`
	Quantity  int64    `json:"quantity"`
	Craftable bool     `json:"craftable"`
}

// ZeroCopy returns a detached copy of the entry with its quantity forced to
// zero. It is used to display craftable items without touching the stored
// quantity.
func (e Entry) ZeroCopy() Entry {
	e.Quantity = 0
	return e
}

// Delta is a quantity update reported by the storage network.
// Amount is the new total for the identity; negative amounts are clamped to
// zero when merged.
type Delta struct {
	Identity  Identity `json:"identity"`
	Amount    int64    `json:"amount"`
	Craftable bool     `json:"craftable"`
}

// reset clears quantity and status flags.
func (e *Entry) reset() {
	e.Quantity = 0
	e.Craftable = false
}

// add merges a delta into the entry.
func (e *Entry) add(d Delta) {
	e.Quantity += d.Amount
	if e.Quantity < 0 {
		e.Quantity = 0
	}
	e.Craftable = e.Craftable || d.Craftable
}
