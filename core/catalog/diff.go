package catalog

import (
	"fmt"
	"slices"
	"strings"

	"stock-terminal/core/stock"
)

// Difference describes how one identity differs between two snapshots.
type Difference struct {
	Identity stock.Identity `json:"identity"`
	Name     string         `json:"name"`
	// LeftPresent and RightPresent report which snapshot defines the identity.
	LeftPresent  bool `json:"left_present"`
	RightPresent bool `json:"right_present"`
	// Mismatch lists differing fields as "field: left=x right=y".
	Mismatch []string `json:"mismatch"`
}

// Diff compares two snapshots over the union of their identities and returns
// every identity that is missing on one side or has differing fields, sorted
// by identity. Mod names are compared under the pseudo item "@mod".
func Diff(left, right *Snapshot) []Difference {
	if left == nil {
		left = NewSnapshot()
	}
	if right == nil {
		right = NewSnapshot()
	}

	union := make(map[stock.Identity]struct{}, len(left.Items)+len(right.Items))
	for id := range left.Items {
		union[id] = struct{}{}
	}
	for id := range right.Items {
		union[id] = struct{}{}
	}

	var diffs []Difference
	for id := range union {
		l, lok := left.Items[id]
		r, rok := right.Items[id]
		d := Difference{Identity: id, LeftPresent: lok, RightPresent: rok}
		if lok {
			d.Name = l.Name
		} else {
			d.Name = r.Name
		}
		if lok && rok {
			d.Mismatch = compareItems(l, r)
			if len(d.Mismatch) == 0 {
				continue
			}
		}
		diffs = append(diffs, d)
	}

	for _, id := range unionKeys(left.Mods, right.Mods) {
		l, lok := left.Mods[id]
		r, rok := right.Mods[id]
		if lok && rok && l == r {
			continue
		}
		d := Difference{
			Identity:     stock.Identity{Item: "@mod", Variant: id},
			Name:         id,
			LeftPresent:  lok,
			RightPresent: rok,
		}
		if lok && rok {
			d.Mismatch = []string{mismatch("name", l, r)}
		}
		diffs = append(diffs, d)
	}

	slices.SortFunc(diffs, func(a, b Difference) int {
		return a.Identity.Compare(b.Identity)
	})
	return diffs
}

func compareItems(l, r ItemDef) []string {
	var out []string
	if l.Name != r.Name {
		out = append(out, mismatch("name", l.Name, r.Name))
	}
	if l.ModID != r.ModID {
		out = append(out, mismatch("mod", l.ModID, r.ModID))
	}
	if l.RegistryID != r.RegistryID {
		out = append(out, mismatch("registry_id", l.RegistryID, r.RegistryID))
	}
	if !slices.Equal(l.Tooltip, r.Tooltip) {
		out = append(out, mismatch("tooltip", strings.Join(l.Tooltip, "\\n"), strings.Join(r.Tooltip, "\\n")))
	}
	if !slices.Equal(l.Tags, r.Tags) {
		out = append(out, mismatch("tags", strings.Join(l.Tags, ","), strings.Join(r.Tags, ",")))
	}
	if l.Order != r.Order {
		out = append(out, fmt.Sprintf("order: left=%d right=%d", l.Order, r.Order))
	}
	return out
}

func mismatch(field, l, r string) string {
	return fmt.Sprintf("%s: left=%q right=%q", field, l, r)
}

func unionKeys(a, b map[string]string) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
