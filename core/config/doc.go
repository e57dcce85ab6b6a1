// Package config loads the terminal configuration.
//
// Values come from environment variables, optionally seeded from a .env
// file, with defaults taken from the `default` struct tags of each section.
// Keys map to variables by upper-casing and replacing dots with underscores
// (search.sort_by -> SEARCH_SORT_BY).
//
// # Sections
//
//   - Server: port, API key, terminal name, row width
//   - Log: level and format
//   - Database: driver and connection for the catalog tables
//   - Storage: S3/MinIO credentials and bucket for the catalog document
//   - Catalog: source selection, object name, cache TTL
//   - Search: initial search mode, view mode and sort order
//   - Assist: Redis search-assist publisher
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
