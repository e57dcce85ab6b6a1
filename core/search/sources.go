package search

import (
	"strings"

	"stock-terminal/core/stock"
)

// Resolution describes how a concrete item representation was obtained.
type Resolution int

const (
	// Unresolved means no representation could be built.
	Unresolved Resolution = iota
	// Resolved means the exact identity, variant included, was found.
	Resolved
	// FallbackResolved means only the generic definition of the item was found.
	FallbackResolved
)

func (r Resolution) String() string {
	switch r {
	case Resolved:
		return "resolved"
	case FallbackResolved:
		return "fallback"
	default:
		return "unresolved"
	}
}

// Item is the concrete representation of a stock entry.
type Item struct {
	Identity     stock.Identity
	RegistryName string
}

// IsEmpty reports whether the representation carries no item.
func (i Item) IsEmpty() bool {
	return i.Identity.Item == ""
}

// Describer supplies display metadata for an identity.
type Describer interface {
	DisplayName(id stock.Identity) string
	ModID(id stock.Identity) string
	Tooltip(id stock.Identity) []string
}

// ModRegistry resolves a mod id to its human-readable name.
type ModRegistry interface {
	ModName(modID string) (string, error)
}

// Resolver builds the concrete representation of an identity. It tries an
// exact reconstruction first, then the generic definition.
type Resolver interface {
	Resolve(id stock.Identity) (Item, Resolution)
}

// TagRegistry enumerates alternate identifiers (tags) of an item.
type TagRegistry interface {
	Tags(item Item) ([]string, error)
}

// Sources bundles the metadata collaborators. Nil members degrade to
// IdentityDescriber for Describer and to "no match" for the rest.
type Sources struct {
	Describer Describer
	Mods      ModRegistry
	Resolver  Resolver
	Tags      TagRegistry
}

// IdentityDescriber derives metadata from the identity alone: the item id is
// the display name and its namespace is the mod id.
type IdentityDescriber struct{}

// DisplayName returns the item id.
func (IdentityDescriber) DisplayName(id stock.Identity) string {
	return id.Item
}

// ModID returns the namespace of a "namespace:path" item id.
func (IdentityDescriber) ModID(id stock.Identity) string {
	return Namespace(id.Item)
}

// Tooltip returns no lines.
func (IdentityDescriber) Tooltip(stock.Identity) []string {
	return nil
}

// Namespace returns the part of a "namespace:path" id before the colon, or
// the empty string when there is none.
func Namespace(item string) string {
	ns, _, found := strings.Cut(item, ":")
	if !found {
		return ""
	}
	return ns
}
