// Package terminal exposes a stock terminal over HTTP.
//
// The Service owns the stock ledger and the view materializer. Stock updates
// may arrive on any request goroutine and go straight to the ledger, which
// is safe for concurrent use. Everything that touches the materializer is
// serialized by the service mutex, since the materializer itself is meant
// for a single display thread.
//
// # Routes
//
//	POST   /terminal/stock            apply stock deltas
//	DELETE /terminal/stock            clear all stock
//	GET    /terminal/stock/quantity   stored quantity of one identity
//	PUT    /terminal/allowlist        restrict the view to listed identities
//	GET    /terminal/settings         current settings
//	PUT    /terminal/settings         update search, sort, view mode, scroll
//	PUT    /terminal/power            set the network power state
//	POST   /terminal/close            close the terminal session
//	GET    /terminal/view             refresh and return the visible rows
//	POST   /terminal/catalog/refresh  reload item metadata
package terminal
