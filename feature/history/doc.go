// Package history stores finished audit runs.
//
// Each run writes one audit_runs row with its counts and one audit_ids row per
// classified effect id. The tables are created with gorm's AutoMigrate and
// checked with the database schema inspector before use, so a stale MySQL
// schema fails loudly instead of dropping columns.
package history
