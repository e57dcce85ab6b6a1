package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"stock-terminal/core/search"
	"stock-terminal/core/stock"
)

// Parse errors.
var (
	ErrUnknownKey       = errors.New("unknown sort key")
	ErrUnknownDirection = errors.New("unknown sort direction")
)

// Key selects the primary ordering.
type Key int

const (
	KeyName Key = iota
	KeyMod
	KeyAmount
	KeyCustom
)

func (k Key) String() string {
	switch k {
	case KeyMod:
		return "mod"
	case KeyAmount:
		return "amount"
	case KeyCustom:
		return "custom"
	default:
		return "name"
	}
}

// ParseKey parses the String form of a Key.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "":
		return KeyName, nil
	case "mod":
		return KeyMod, nil
	case "amount":
		return KeyAmount, nil
	case "custom":
		return KeyCustom, nil
	}
	return KeyName, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// Direction flips the ordering.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseDirection parses "ascending"/"asc" or "descending"/"desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc", "":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Strategy is an externally supplied ordering used for KeyCustom.
// It need not be total; ties are broken by name and identity.
type Strategy interface {
	Compare(a, b stock.Entry) int
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(a, b stock.Entry) int

// Compare calls f(a, b).
func (f StrategyFunc) Compare(a, b stock.Entry) int {
	return f(a, b)
}

// Registry resolves sort keys to comparators.
type Registry struct {
	describer   search.Describer
	integration Strategy
	fallback    Strategy
}

// NewRegistry creates a registry. A nil describer falls back to
// search.IdentityDescriber. KeyCustom uses the integration strategy when one
// is installed, then the built-in fallback, then behaves like KeyName.
func NewRegistry(describer search.Describer, integration, fallback Strategy) *Registry {
	if describer == nil {
		describer = search.IdentityDescriber{}
	}
	return &Registry{describer: describer, integration: integration, fallback: fallback}
}

// Custom returns the strategy KeyCustom sorts by, or nil.
func (r *Registry) Custom() Strategy {
	if r.integration != nil {
		return r.integration
	}
	return r.fallback
}

// HasCustom reports whether KeyCustom differs from KeyName.
func (r *Registry) HasCustom() bool {
	return r.Custom() != nil
}

// row carries the precomputed sort keys of one entry.
type row struct {
	entry stock.Entry
	name  string
	mod   string
}

// Sort orders entries in place.
func (r *Registry) Sort(entries []stock.Entry, key Key, dir Direction) {
	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = row{
			entry: e,
			name:  strings.ToLower(r.describer.DisplayName(e.Identity)),
		}
		if key == KeyMod {
			rows[i].mod = strings.ToLower(r.describer.ModID(e.Identity))
		}
	}

	compare := r.comparator(key)
	if dir == Descending {
		base := compare
		compare = func(a, b row) int { return base(b, a) }
	}
	slices.SortFunc(rows, compare)

	for i := range rows {
		entries[i] = rows[i].entry
	}
}

func (r *Registry) comparator(key Key) func(a, b row) int {
	switch key {
	case KeyMod:
		return func(a, b row) int {
			if c := strings.Compare(a.mod, b.mod); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case KeyAmount:
		// Larger stacks first in ascending order.
		return func(a, b row) int {
			if c := cmp.Compare(b.entry.Quantity, a.entry.Quantity); c != 0 {
				return c
			}
			return byName(a, b)
		}
	case KeyCustom:
		if custom := r.Custom(); custom != nil {
			return func(a, b row) int {
				if c := custom.Compare(a.entry, b.entry); c != 0 {
					return c
				}
				return byName(a, b)
			}
		}
	}
	return byName
}

func byName(a, b row) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return a.entry.Identity.Compare(b.entry.Identity)
}
