// Package search evaluates parsed queries against stock entries.
//
// Entry metadata (display name, tooltip, mod, tags, registry id) is not stored
// on stock entries. It is looked up through the collaborator interfaces in
// Sources, which the catalog package implements. Every lookup is computed at
// most once per entry per Match call and discarded afterwards, because the
// underlying metadata may change between rebuilds.
//
// Lookups that fail degrade to "no match contribution": an empty string, an
// empty tag set, or false. A failure for one entry never aborts the caller.
//
// # Field Semantics
//
//   - Name: display name contains the term. When Settings.TooltipSearch is on,
//     a miss falls through to the space-preserving lower-cased tooltip.
//   - Mod: mod id contains the term, otherwise the mod's display name does.
//   - Tooltip: the tooltip with all whitespace removed contains the term with
//     all whitespace removed.
//   - AlternateID: any tag of the resolved item contains the term.
//   - RegistryID: the resolved item's registry id contains the term.
package search
