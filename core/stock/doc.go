// Package stock holds the canonical set of stock entries known to a terminal.
//
// A stock entry is one distinct item kind (an Identity) together with the
// quantity currently reported by the storage network and whether the network
// can craft it. The Ledger keeps at most one entry per Identity and merges
// incoming deltas into the stored entry instead of appending new records.
//
// # Merge Rule
//
// Upsert resets the stored entry and then adds the incoming delta. Deltas are
// therefore treated as the new authoritative total for their identity:
//
//	ledger.Upsert(stock.Delta{Identity: iron, Amount: 64})
//	ledger.Upsert(stock.Delta{Identity: iron, Amount: 10})
//	ledger.QuantityOf(iron) // 10
//
// # Concurrency
//
// Upserts usually come from a network goroutine while the view is rebuilt on
// the display goroutine. The Ledger is guarded by a read/write mutex and
// Iterate yields value copies taken under the read lock, so a rebuild always
// observes a consistent snapshot. Every mutation bumps Version, which the view
// layer polls to coalesce any number of upserts into a single rebuild.
//
// # Allow Lists
//
// An AllowList restricts which identities are eligible for display at all,
// for example a partition configured on the terminal. NewAllowList matches
// item and variant exactly, NewFuzzyAllowList ignores the variant.
package stock
