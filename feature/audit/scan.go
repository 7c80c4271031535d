package audit

import (
	"context"
	"fmt"

	"fxr-query/core/reconcile"
	"fxr-query/feature/dump"
	"fxr-query/feature/emevd"
	"fxr-query/feature/game"
	"fxr-query/feature/msb"
	"fxr-query/feature/param"
	"fxr-query/feature/tae"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Counts reports how much of each source family was scanned.
type Counts struct {
	Characters     int `json:"characters"`
	Objects        int `json:"objects"`
	TimelineEvents int `json:"timeline_events"`
	Maps           int `json:"maps"`
	Regions        int `json:"regions"`
	Params         int `json:"params"`
	Cells          int `json:"cells"`
	Scripts        int `json:"scripts"`
	ScriptIDs      int `json:"script_ids"`
}

// Scanner walks one game dump and records every effect reference.
type Scanner struct {
	source  *dump.Source
	profile *game.Profile
	workers int
	logger  *zap.Logger
}

// NewScanner creates a scanner. workers bounds how many source families run
// at once; values below one mean one.
func NewScanner(source *dump.Source, profile *game.Profile, workers int, logger *zap.Logger) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{source: source, profile: profile, workers: workers, logger: logger}
}

// Scan records into rec. Source families are scanned concurrently; rec
// serializes the writes.
func (s *Scanner) Scan(ctx context.Context, rec *reconcile.Recorder) (Counts, error) {
	var (
		chr, obj, scripts Counts
		maps, params      Counts
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	g.Go(func() error {
		var err error
		chr, err = s.scanCharacters(ctx, rec)
		return err
	})
	g.Go(func() error {
		var err error
		obj, err = s.scanObjects(ctx, rec)
		return err
	})
	g.Go(func() error {
		var err error
		maps, err = s.scanMaps(ctx, rec)
		return err
	})
	g.Go(func() error {
		var err error
		params, err = s.scanParams(ctx, rec)
		return err
	})
	g.Go(func() error {
		var err error
		scripts, err = s.scanScripts(ctx, rec)
		return err
	})

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}

	return Counts{
		Characters:     chr.Characters,
		Objects:        obj.Objects,
		TimelineEvents: chr.TimelineEvents + obj.TimelineEvents,
		Maps:           maps.Maps,
		Regions:        maps.Regions,
		Params:         params.Params,
		Cells:          params.Cells,
		Scripts:        scripts.Scripts,
		ScriptIDs:      scripts.ScriptIDs,
	}, nil
}

func (s *Scanner) scanCharacters(ctx context.Context, sink reconcile.Sink) (Counts, error) {
	var c Counts
	err := s.source.Characters(ctx, func(name string, b *tae.Binder) error {
		c.Characters++
		c.TimelineEvents += tae.ScanBinder(b, s.profile.Timeline, sink)
		return nil
	})
	if err != nil {
		return c, fmt.Errorf("failed to scan characters: %w", err)
	}
	s.logger.Debug("Scanned characters", zap.Int("binders", c.Characters), zap.Int("events", c.TimelineEvents))
	return c, nil
}

func (s *Scanner) scanObjects(ctx context.Context, sink reconcile.Sink) (Counts, error) {
	var c Counts
	err := s.source.Objects(ctx, func(name string, b *tae.Binder) error {
		c.Objects++
		c.TimelineEvents += tae.ScanBinder(b, s.profile.Timeline, sink)
		return nil
	})
	if err != nil {
		return c, fmt.Errorf("failed to scan objects: %w", err)
	}
	s.logger.Debug("Scanned objects", zap.Int("binders", c.Objects), zap.Int("events", c.TimelineEvents))
	return c, nil
}

func (s *Scanner) scanMaps(ctx context.Context, sink reconcile.Sink) (Counts, error) {
	var c Counts
	err := s.source.Maps(ctx, func(name string, m *msb.Map) error {
		n, err := msb.Scan(m, s.profile.SceneFormat, sink)
		if err != nil {
			s.logger.Warn("Skipping map", zap.String("map", name), zap.Error(err))
			return nil
		}
		c.Maps++
		c.Regions += n
		return nil
	})
	if err != nil {
		return c, fmt.Errorf("failed to scan maps: %w", err)
	}
	s.logger.Debug("Scanned maps", zap.Int("maps", c.Maps), zap.Int("regions", c.Regions))
	return c, nil
}

func (s *Scanner) scanParams(ctx context.Context, sink reconcile.Sink) (Counts, error) {
	var c Counts
	err := s.source.Params(ctx, func(name string, t *param.Table) error {
		c.Params++
		c.Cells += param.Scan(t, s.profile.ExcludedParams, sink)
		return nil
	})
	if err != nil {
		return c, fmt.Errorf("failed to scan params: %w", err)
	}
	s.logger.Debug("Scanned params", zap.Int("tables", c.Params), zap.Int("cells", c.Cells))
	return c, nil
}

func (s *Scanner) scanScripts(ctx context.Context, rec *reconcile.Recorder) (Counts, error) {
	scripts, err := s.source.Scripts(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to scan scripts: %w", err)
	}

	res := emevd.Scan(scripts, s.profile.Scripts.Nested, s.profile.Scripts.Loose)
	for _, name := range res.MissingTargets {
		s.logger.Warn("Event script target missing", zap.String("script", name))
	}
	rec.RecordAll(res.IDs)

	s.logger.Debug("Scanned scripts",
		zap.Int("scripts", len(scripts)),
		zap.Int("nested", res.NestedScripts),
		zap.Int("loose_events", res.LooseEvents),
		zap.Int("ids", len(res.IDs)))
	return Counts{Scripts: len(scripts), ScriptIDs: len(res.IDs)}, nil
}
