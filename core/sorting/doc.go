// Package sorting maps a sort key and direction to a total order over stock
// entries.
//
// Every ordering ends with the entry identity as the final tie-breaker, so
// sorting the same input twice always yields the same sequence and flipping
// the direction yields exactly the reversed sequence.
//
// The Custom key orders entries with a Strategy supplied once at startup by an
// optional integration. Without one it falls back to the name order.
package sorting
