// Package metrics exposes Prometheus metrics for the stock terminal.
//
// Metrics owns a private registry with the Go and process collectors plus
// the terminal series below, all prefixed with the configured namespace:
//
//	view_rebuilds_total              counter
//	view_rebuild_duration_seconds    histogram
//	view_entries_scanned             gauge
//	view_size                        gauge
//	ledger_entries                   gauge
//	ledger_upserts_total             counter
//	http_requests_total              counter (method, path, status)
//
// Metrics implements view.Observer. Handler serves the registry for Fiber.
package metrics
