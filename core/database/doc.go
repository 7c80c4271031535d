// Package database handles database connections and schema inspection for the
// optional run history.
//
// It provides a wrapper around GORM to configure sqlite or MySQL connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver. For sqlite the Name is the database
// file (or ":memory:"); for MySQL it is the schema name.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table layout so the history
// store can refuse to write into a table that predates its schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Run history disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "audit_runs", "run_id", "game")
package database
