// Package view materializes the ordered, filtered list of stock entries shown
// by a terminal.
//
// The Materializer is polled once per display tick through Refresh. It
// compares the current view mode, search mode, search text, sort key, sort
// direction and tooltip setting with the values it saw last time, and checks
// whether the ledger or allow list changed. Only when something observable
// changed does it rebuild; otherwise the previous view is kept as-is.
//
// A rebuild runs every ledger entry through, in order:
//
//  1. the allow list, if one is set;
//  2. the view mode (Craftable drops non-craftable entries, Stored drops
//     empty ones);
//  3. the parsed search query;
//
// and then sorts the survivors with the selected comparator. In Craftable mode
// the view holds zero-quantity copies, so the ledger's quantities are never
// touched.
//
// The Materializer is not safe for concurrent use. Ledger upserts may happen
// from any goroutine; everything else must be called from the display
// goroutine or behind a lock.
package view
