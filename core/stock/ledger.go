package stock

import (
	"iter"
	"sync"
)

// Ledger holds the canonical set of stock entries, keyed by Identity.
type Ledger struct {
	mu      sync.RWMutex
	entries map[Identity]*Entry
	version uint64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[Identity]*Entry),
	}
}

// Upsert merges a delta into the ledger.
// If an entry exists for the delta's identity it is reset and the delta is
// added to it; otherwise a new entry is inserted.
func (l *Ledger) Upsert(d Delta) error {
	if err := d.Identity.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.entries[d.Identity]
	if !ok {
		st = &Entry{Identity: d.Identity}
		l.entries[d.Identity] = st
	}
	st.reset()
	st.add(d)

	l.version++
	return nil
}

// QuantityOf returns the stored quantity for the identity, or 0 if absent.
func (l *Ledger) QuantityOf(id Identity) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if st, ok := l.entries[id]; ok {
		return st.Quantity
	}
	return 0
}

// Lookup returns a copy of the entry stored for the identity.
func (l *Ledger) Lookup(id Identity) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	st, ok := l.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *st, true
}

// ResetAll clears every entry. Used when the upstream source resynchronizes.
func (l *Ledger) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.entries)
	l.version++
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Version returns a counter bumped by every mutation.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Iterate returns a sequence over copies of all entries in no particular
// order. The read lock is held while the sequence is being consumed, so
// callers must not mutate the ledger from inside the loop body.
// The sequence can be ranged over any number of times.
func (l *Ledger) Iterate() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()

		for _, st := range l.entries {
			if !yield(*st) {
				return
			}
		}
	}
}
