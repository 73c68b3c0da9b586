// Package service runs the ranking pipeline: it aggregates box scores,
// scores and normalizes both boards, ranks them and assembles the
// published documents.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/goatboard/internal/adapters/output"
	"github.com/okian/goatboard/internal/adapters/repository"
	"github.com/okian/goatboard/internal/domain/aggregate"
	"github.com/okian/goatboard/internal/domain/baseline"
	"github.com/okian/goatboard/internal/domain/model"
	"github.com/okian/goatboard/internal/domain/scoring"
	"github.com/okian/goatboard/pkg/logger"
	"github.com/okian/goatboard/pkg/metrics"
)

// Phase names used in logs and metrics.
const (
	PhaseAggregate = "aggregate"
	PhaseCareer    = "career"
	PhaseRecent    = "recent"
	PhaseHistory   = "history"
	PhasePublish   = "publish"
)

const defaultCheckEvery = 4096

// RecordSource yields box-score records until io.EOF.
type RecordSource interface {
	Next() (model.BoxScoreRecord, error)
}

// Inputs are the materialized inputs of one run. Only Records is
// required; every other input degrades to empty.
type Inputs struct {
	Records    RecordSource
	Players    map[string]model.PlayerMeta
	Teams      map[string]string
	ActiveIDs  []string
	Baseline   baseline.Feed
	FinalsMVPs model.FinalsMVPLedger
}

// Stats summarizes a run.
type Stats struct {
	RecordsRead    int
	RecordsSkipped int
	CareerPlayers  int
	RecentPlayers  int
	BaselineByID   int
	BaselineByName int
}

// Result is the output of a run.
type Result struct {
	RunID  string
	Career *output.CareerDocument
	Recent *output.RecentDocument
	Stats  Stats
}

// Engine runs the two-pass ranking pipeline.
type Engine struct {
	logger        logger.Logger
	metrics       *metrics.Manager
	clock         func() time.Time
	window        model.Window
	recentLimit   int
	history       repository.HistoryStore
	championships scoring.ChampionshipSource
	checkEvery    int
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithClock sets the time source used for generatedAt and player status.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithWindow sets the rolling recent-form window.
func WithWindow(start, span int) Option {
	return func(e *Engine) {
		if start > 0 && span > 0 {
			e.window = model.Window{Start: start, Span: span}
		}
	}
}

// WithRecentLimit truncates the recent board after ranking; 0 keeps everyone.
func WithRecentLimit(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.recentLimit = n
		}
	}
}

// WithHistory records every run and derives deltas from the previous one.
func WithHistory(h repository.HistoryStore) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// WithChampionshipSource replaces the resume-mined championship overrides.
func WithChampionshipSource(src scoring.ChampionshipSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.championships = src
		}
	}
}

// WithCheckEvery sets how many records are read between cancellation checks.
func WithCheckEvery(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.checkEvery = n
		}
	}
}

// New constructs an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		metrics:    metrics.Default(),
		clock:      time.Now,
		window:     model.Window{Start: aggregate.DefaultWindowStart, Span: aggregate.DefaultWindowSpan},
		checkEvery: defaultCheckEvery,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes the pipeline. Cancellation aborts the run without
// producing documents.
func (e *Engine) Run(ctx context.Context, in Inputs) (*Result, error) {
	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}
	if in.Records == nil {
		return nil, ErrNoRecords
	}

	runID := uuid.NewString()
	now := e.clock().UTC()
	log := e.logger.With(logger.String("run", runID))
	log.Info(ctx, "ranking run started",
		logger.String("window", e.window.Label()),
		logger.Int("registry", len(in.Players)),
		logger.Int("active", len(in.ActiveIDs)),
	)

	agg, err := e.aggregate(ctx, log, in)
	if err != nil {
		e.metrics.RecordRunError(PhaseAggregate)
		return nil, err
	}

	ix := baseline.NewIndex(in.Baseline)
	b := &boardBuilder{
		engine:  e,
		log:     log,
		now:     now,
		agg:     agg,
		in:      in,
		index:   ix,
		history: e.previousScores(ctx, log),
	}

	start := time.Now()
	career, err := b.career(ctx)
	if err != nil {
		e.metrics.RecordRunError(PhaseCareer)
		return nil, err
	}
	e.metrics.ObservePhase(PhaseCareer, msSince(start))

	start = time.Now()
	recent, err := b.recent(ctx)
	if err != nil {
		e.metrics.RecordRunError(PhaseRecent)
		return nil, err
	}
	e.metrics.ObservePhase(PhaseRecent, msSince(start))

	e.metrics.SetPopulation(repository.BoardCareer, len(career.doc.Players))
	e.metrics.SetPopulation(repository.BoardRecent, len(recent.Players))
	if len(career.doc.Players) > 0 {
		e.metrics.SetTopScore(repository.BoardCareer, career.doc.Players[0].GoatScore)
	}
	if len(recent.Players) > 0 {
		e.metrics.SetTopScore(repository.BoardRecent, recent.Players[0].Score)
	}

	e.recordHistory(ctx, log, runID, now, career.doc, recent)
	e.metrics.MarkRun(now.Unix())

	res := &Result{
		RunID:  runID,
		Career: career.doc,
		Recent: recent,
		Stats: Stats{
			RecordsRead:    agg.Read,
			RecordsSkipped: agg.Skipped,
			CareerPlayers:  len(career.doc.Players),
			RecentPlayers:  len(recent.Players),
			BaselineByID:   career.byID,
			BaselineByName: career.byName,
		},
	}
	log.Info(ctx, "ranking run completed",
		logger.Int("records", res.Stats.RecordsRead),
		logger.Int("skipped", res.Stats.RecordsSkipped),
		logger.Int("career", res.Stats.CareerPlayers),
		logger.Int("recent", res.Stats.RecentPlayers),
		logger.Int("baselineById", res.Stats.BaselineByID),
		logger.Int("baselineByName", res.Stats.BaselineByName),
	)
	return res, nil
}

func (e *Engine) aggregate(ctx context.Context, log logger.Logger, in Inputs) (*aggregate.Result, error) {
	start := time.Now()
	agg := aggregate.New(
		aggregate.WithWindow(e.window),
		aggregate.WithActiveIDs(in.ActiveIDs),
	)

	for n := 0; ; n++ {
		if n%e.checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := in.Records.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrAggregate, err)
		}
		e.metrics.RecordRead()
		if err := agg.Add(rec); err != nil {
			if errors.Is(err, aggregate.ErrMissingPersonID) {
				e.metrics.RecordSkipped("missing_person_id")
				continue
			}
			return nil, fmt.Errorf("%w: %w", ErrAggregate, err)
		}
	}

	res := agg.Finalize()
	e.metrics.ObservePhase(PhaseAggregate, msSince(start))
	log.Info(ctx, "box scores aggregated",
		logger.Int("read", res.Read),
		logger.Int("skipped", res.Skipped),
		logger.Int("players", len(res.Career)),
		logger.Int("firstSeason", res.Coverage.FirstSeason),
		logger.Int("lastSeason", res.Coverage.LastSeason),
	)
	return res, ctx.Err()
}

// previousScores loads the last recorded career scores for deltas.
func (e *Engine) previousScores(ctx context.Context, log logger.Logger) map[string]float64 {
	if e.history == nil {
		return nil
	}
	scores, err := e.history.LatestScores(ctx, repository.BoardCareer)
	if err != nil {
		if !errors.Is(err, repository.ErrNoRuns) {
			e.metrics.RecordRunError(PhaseHistory)
			log.Warn(ctx, "previous run unavailable", logger.Error(err))
		}
		return nil
	}
	return scores
}

func (e *Engine) recordHistory(
	ctx context.Context,
	log logger.Logger,
	runID string,
	now time.Time,
	career *output.CareerDocument,
	recent *output.RecentDocument,
) {
	if e.history == nil {
		return
	}
	start := time.Now()

	careerEntries := make([]repository.Entry, len(career.Players))
	for i, p := range career.Players {
		careerEntries[i] = repository.Entry{Rank: p.Rank, PersonID: p.PersonID, Score: p.GoatScore}
	}
	recentEntries := make([]repository.Entry, len(recent.Players))
	for i, p := range recent.Players {
		recentEntries[i] = repository.Entry{Rank: p.Rank, PersonID: p.PersonID, Score: p.Score}
	}

	boards := []struct {
		name    string
		entries []repository.Entry
	}{
		{repository.BoardCareer, careerEntries},
		{repository.BoardRecent, recentEntries},
	}
	for _, b := range boards {
		run := repository.Run{
			ID:          runID + "-" + b.name,
			Board:       b.name,
			GeneratedAt: now,
			Players:     len(b.entries),
		}
		if len(b.entries) > 0 {
			run.TopPersonID = b.entries[0].PersonID
			run.TopScore = b.entries[0].Score
		}
		if err := e.history.RecordRun(ctx, run, b.entries); err != nil {
			e.metrics.RecordRunError(PhaseHistory)
			log.Warn(ctx, "failed to record run", logger.String("board", b.name), logger.Error(err))
		}
	}
	e.metrics.ObservePhase(PhaseHistory, msSince(start))
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
