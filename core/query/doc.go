// Package query parses the terminal search language into a boolean tree.
//
// # Syntax
//
//   - "|" separates OR-groups. There is no escaping.
//   - Whitespace separates AND-terms inside a group. Double quotes suppress
//     splitting, e.g. "iron ingot" is one term; the quotes are dropped.
//   - A leading "-" or "!" negates a term.
//   - After negation one field prefix may follow: "@" mod, "#" tooltip,
//     "$" alternate id (tag), "&" or "*" registry id. No prefix searches
//     the display name.
//   - An empty query, or any OR-group that is empty after trimming, matches
//     everything.
//
// Parsing never fails. Malformed quoting only changes how the text is split.
//
// # Evaluation
//
// Query.Match walks the tree and asks a TermMatcher for the raw result of
// each term; negation and short-circuiting are applied here so matchers only
// deal with one field at a time.
package query
