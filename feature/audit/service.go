package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"fxr-query/core/logger"
	"fxr-query/core/reconcile"
	"fxr-query/feature/dump"
	"fxr-query/feature/game"
	"fxr-query/feature/history"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures one audit service.
type Options struct {
	Game    game.Config
	Output  OutputConfig
	Scan    ScanConfig
	History *history.Store
	Publish *Publisher
}

// Result describes a finished audit run.
type Result struct {
	RunID     string            `json:"run_id"`
	Game      string            `json:"game"`
	Stem      string            `json:"stem"`
	Summary   reconcile.Summary `json:"summary"`
	Counts    Counts            `json:"counts"`
	Files     []string          `json:"files"`
	Published []string          `json:"published,omitempty"`
	Started   time.Time         `json:"started"`
	Finished  time.Time         `json:"finished"`

	sets *reconcile.Sets
}

// Sets returns the final reconciliation sets.
func (r *Result) Sets() *reconcile.Sets {
	return r.sets
}

// Service runs audits of one game dump.
type Service struct {
	opts   Options
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService creates a new audit service.
func NewService(opts Options, logger *zap.Logger) *Service {
	return &Service{
		opts:   opts,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Run audits the game directory against the reference list at referencePath,
// writes the reports and, when configured, stores and publishes the run.
// History and publishing failures are logged and do not fail the run.
func (s *Service) Run(ctx context.Context, referencePath string) (*Result, error) {
	reference, err := LoadReference(referencePath)
	if err != nil {
		return nil, err
	}

	dir := s.opts.Game.Directory
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrGameDirectory, dir)
	}

	profile, err := game.Resolve(s.opts.Game.Profile, dir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   s.newID(),
		Game:    profile.Name,
		Stem:    ReferenceStem(referencePath),
		Started: s.now(),
	}
	log := logger.WithRun(s.logger, res.RunID)
	log.Info("Audit started",
		zap.String("game", profile.Name),
		zap.String("directory", dir),
		zap.String("reference", referencePath),
		zap.Int("reference_ids", len(reference)))

	rec := reconcile.NewRecorder(reconcile.NewSets(reference))
	scanner := NewScanner(dump.NewSource(dir, log), profile, s.opts.Scan.Workers, log)
	if res.Counts, err = scanner.Scan(ctx, rec); err != nil {
		return nil, err
	}
	res.sets = rec.Sets()
	res.Summary = res.sets.Summary()

	if res.Files, err = WriteReports(s.opts.Output.Directory, res.Stem, profile.Name, res.sets); err != nil {
		return nil, err
	}
	res.Finished = s.now()

	log.Info("Audit finished",
		zap.Int("unused", res.Summary.Unused),
		zap.Int("used", res.Summary.Used),
		zap.Int("extra", res.Summary.Extra),
		zap.Duration("duration", res.Finished.Sub(res.Started)))

	if s.opts.History != nil {
		_, err := s.opts.History.Save(ctx, history.Run{
			RunID:         res.RunID,
			Game:          res.Game,
			ReferenceFile: referencePath,
			StartedAt:     res.Started,
			FinishedAt:    res.Finished,
			Sets:          res.sets,
		})
		if err != nil {
			log.Warn("Failed to store run history", zap.Error(err))
		}
	}

	if s.opts.Publish != nil {
		keys, err := s.opts.Publish.Publish(ctx, res.RunID, res.Files)
		res.Published = keys
		if err != nil {
			log.Warn("Failed to publish reports", zap.Error(err))
		} else {
			log.Info("Reports published", zap.Strings("keys", keys))
		}
	}

	return res, nil
}
