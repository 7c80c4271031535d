package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fxr-query/core/database"
	"fxr-query/core/reconcile"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when a run id has no stored record.
var ErrRunNotFound = errors.New("audit run not found")

const idBatchSize = 500

// Run is one finished audit ready to be stored.
type Run struct {
	RunID         string
	Game          string
	ReferenceFile string
	StartedAt     time.Time
	FinishedAt    time.Time
	Sets          *reconcile.Sets
}

// Store persists audit runs through gorm.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open connection without touching the schema.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open migrates the history tables and verifies their columns.
func Open(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&AuditRun{}, &AuditID{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history tables: %w", err)
	}

	tables := make([]string, 0, len(requiredColumns))
	for table := range requiredColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, requiredColumns[table]...)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("table %s is missing columns %v", table, missing)
		}
	}
	return NewStore(db), nil
}

// Save stores the run summary and every classified id in one transaction.
func (s *Store) Save(ctx context.Context, run Run) (*AuditRun, error) {
	summary := run.Sets.Summary()
	record := &AuditRun{
		RunID:         run.RunID,
		Game:          run.Game,
		ReferenceFile: run.ReferenceFile,
		Reference:     summary.Reference,
		Unused:        summary.Unused,
		Used:          summary.Used,
		Extra:         summary.Extra,
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}

	var ids []AuditID
	for _, class := range reconcile.Classifications {
		for _, id := range run.Sets.Sorted(class) {
			ids = append(ids, AuditID{RunID: run.RunID, FxrID: id, Classification: string(class)})
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.CreateInBatches(ids, idBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save audit run %s: %w", run.RunID, err)
	}
	return record, nil
}

// List returns the most recent runs first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]AuditRun, error) {
	q := s.db.WithContext(ctx).Order("started_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var runs []AuditRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit runs: %w", err)
	}
	return runs, nil
}

// Get returns one run by its run id.
func (s *Store) Get(ctx context.Context, runID string) (*AuditRun, error) {
	var run AuditRun
	err := s.db.WithContext(ctx).Where("run_id = ?", runID).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit run %s: %w", runID, err)
	}
	return &run, nil
}

// IDs returns the ids of a run with the given classification, ascending.
func (s *Store) IDs(ctx context.Context, runID string, class reconcile.Classification) ([]int32, error) {
	var ids []int32
	err := s.db.WithContext(ctx).
		Model(&AuditID{}).
		Where("run_id = ? AND classification = ?", runID, string(class)).
		Order("fxr_id").
		Pluck("fxr_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s ids of run %s: %w", class, runID, err)
	}
	return ids, nil
}
