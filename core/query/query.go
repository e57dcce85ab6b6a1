package query

import "strings"

// Field selects which searchable field a term is matched against.
type Field int

const (
	// FieldName matches the display name (and the tooltip when enabled).
	FieldName Field = iota
	// FieldMod matches the mod id or the mod's human-readable name.
	FieldMod
	// FieldTooltip matches the whitespace-insensitive tooltip text.
	FieldTooltip
	// FieldAlternateID matches alternate identifiers such as tags.
	FieldAlternateID
	// FieldRegistryID matches the canonical registry id.
	FieldRegistryID
)

func (f Field) String() string {
	switch f {
	case FieldMod:
		return "mod"
	case FieldTooltip:
		return "tooltip"
	case FieldAlternateID:
		return "alternate_id"
	case FieldRegistryID:
		return "registry_id"
	default:
		return "name"
	}
}

// Term is one signed, field-scoped search term.
type Term struct {
	Negated bool
	Field   Field
	Text    string
}

func (t Term) String() string {
	var b strings.Builder
	if t.Negated {
		b.WriteString("NOT ")
	}
	b.WriteString(t.Field.String())
	b.WriteString(":")
	b.WriteString(t.Text)
	return b.String()
}

// Group is a conjunction of terms.
type Group []Term

// Query is a disjunction of groups.
// MatchAll is set when the query is empty or contains an empty group.
type Query struct {
	Groups   []Group
	MatchAll bool
}

// TermMatcher reports whether a single term matches, before negation.
type TermMatcher interface {
	MatchTerm(t Term) bool
}

// TermMatcherFunc adapts a function to the TermMatcher interface.
type TermMatcherFunc func(t Term) bool

// MatchTerm calls f(t).
func (f TermMatcherFunc) MatchTerm(t Term) bool {
	return f(t)
}

// Match reports whether any group matches. MatchAll short-circuits without
// consulting m.
func (q Query) Match(m TermMatcher) bool {
	if q.MatchAll {
		return true
	}
	for _, g := range q.Groups {
		if g.Match(m) {
			return true
		}
	}
	return false
}

// Match reports whether every term of the group passes.
// A group with no terms matches.
func (g Group) Match(m TermMatcher) bool {
	for _, t := range g {
		if m.MatchTerm(t) == t.Negated {
			return false
		}
	}
	return true
}

func (q Query) String() string {
	if q.MatchAll {
		return "*"
	}
	parts := make([]string, 0, len(q.Groups))
	for _, g := range q.Groups {
		terms := make([]string, 0, len(g))
		for _, t := range g {
			terms = append(terms, t.String())
		}
		parts = append(parts, "("+strings.Join(terms, " AND ")+")")
	}
	return strings.Join(parts, " OR ")
}
