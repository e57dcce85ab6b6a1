// Package assist forwards the raw terminal search text to an external
// search-assist integration over Redis pub/sub.
//
// The view calls SetSearchText on every refresh while an assist search mode
// is active, so the call must never block. Publisher queues the text on a
// bounded channel and a single goroutine publishes it. When the queue is full
// the text is dropped and counted. Consecutive identical texts are published
// once.
//
// # Message Format
//
//	{"terminal": "main", "text": "iron ingot", "at": "2024-01-01T12:00:00Z"}
//
// Nop is used when the integration is disabled.
package assist
