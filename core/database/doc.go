// Package database opens the catalog database and inspects its schema.
//
// Connect wraps GORM and supports the mysql and sqlite drivers. The
// connection is optional: when it fails the terminal still runs, with the
// catalog falling back to object storage or to identity-derived metadata.
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite) so that the catalog can verify its tables
// before reading them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_items")
package database
