package query

import (
	"strings"
	"unicode"
)

// Parse turns raw search text into a Query. The text is lower-cased and
// trimmed first, so callers may pass user input directly.
func Parse(raw string) Query {
	text := Normalize(raw)
	if text == "" {
		return Query{MatchAll: true}
	}

	var q Query
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Query{MatchAll: true}
		}

		var g Group
		for _, tok := range Tokenize(part) {
			if t, ok := parseTerm(tok); ok {
				g = append(g, t)
			}
		}
		q.Groups = append(q.Groups, g)
	}
	return q
}

// Normalize lower-cases and trims search text.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// Tokenize splits a group into terms on unquoted whitespace.
// A double quote toggles quoting and is not part of any token.
func Tokenize(input string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case !inQuotes && unicode.IsSpace(r):
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}

	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func parseTerm(tok string) (Term, bool) {
	var t Term

	if strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "!") {
		t.Negated = true
		tok = tok[1:]
		if tok == "" {
			return t, false
		}
	}

	switch tok[0] {
	case '@':
		t.Field = FieldMod
	case '#':
		t.Field = FieldTooltip
	case '$':
		t.Field = FieldAlternateID
	case '&', '*':
		t.Field = FieldRegistryID
	default:
		t.Field = FieldName
		t.Text = tok
		return t, true
	}

	t.Text = tok[1:]
	if t.Text == "" {
		return t, false
	}
	return t, true
}
