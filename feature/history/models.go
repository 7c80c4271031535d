package history

import "time"

// AuditRun represents the 'audit_runs' table.
type AuditRun struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	RunID         string    `gorm:"column:run_id;size:36;uniqueIndex"`
	Game          string    `gorm:"column:game;size:64"`
	ReferenceFile string    `gorm:"column:reference_file;size:255"`
	Reference     int       `gorm:"column:reference_count"`
	Unused        int       `gorm:"column:unused_count"`
	Used          int       `gorm:"column:used_count"`
	Extra         int       `gorm:"column:extra_count"`
	StartedAt     time.Time `gorm:"column:started_at"`
	FinishedAt    time.Time `gorm:"column:finished_at"`
}

// TableName overrides the table name.
func (AuditRun) TableName() string {
	return "audit_runs"
}

// AuditID represents the 'audit_ids' table. One row per classified id.
type AuditID struct {
	ID             uint   `gorm:"column:id;primaryKey"`
	RunID          string `gorm:"column:run_id;size:36;index"`
	FxrID          int32  `gorm:"column:fxr_id"`
	Classification string `gorm:"column:classification;size:8"`
}

// TableName overrides the table name.
func (AuditID) TableName() string {
	return "audit_ids"
}

var requiredColumns = map[string][]string{
	"audit_runs": {"run_id", "game", "reference_file", "reference_count", "unused_count", "used_count", "extra_count", "started_at", "finished_at"},
	"audit_ids":  {"run_id", "fxr_id", "classification"},
}
