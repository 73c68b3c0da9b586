package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/okian/goatboard/internal/adapters/repository"
	app "github.com/okian/goatboard/internal/app"
	"github.com/okian/goatboard/internal/config"
	"github.com/okian/goatboard/pkg/logger"
	"github.com/okian/goatboard/pkg/metrics"
)

func loadConfig(ctx context.Context) (*config.Config, error) {
	var paths []string
	if cfgFile != "" {
		paths = append(paths, cfgFile)
	}
	cfg, err := config.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// setupLogger initializes the global logger from cfg.
func setupLogger(ctx context.Context, cfg *config.Config) (logger.Logger, error) {
	if err := logger.Init(logger.WithJSON(cfg.LogJSON)); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log := logger.Get()
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return log, nil
}

// runRank runs the pipeline and writes the documents. The career
// document and run history are skipped unless full is set.
func runRank(ctx context.Context, out io.Writer, full bool, limitOverride *int) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	log, err := setupLogger(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	limit := cfg.RecentLimit
	if limitOverride != nil {
		limit = *limitOverride
	}

	opts := []app.Option{
		app.WithLogger(log.Named("engine")),
		app.WithWindow(cfg.RecentSeasonStart, cfg.RecentSeasonSpan),
		app.WithRecentLimit(limit),
	}

	if full && cfg.HistoryDB != "" {
		history, err := repository.NewSQLiteHistory(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() { _ = history.Close() }()
		opts = append(opts, app.WithHistory(history))
	}

	in, closer, err := app.OpenInputs(ctx, cfg, log.Named("inputs"))
	if err != nil {
		metrics.RecordRunError(app.PhaseAggregate)
		return err
	}
	defer func() { _ = closer.Close() }()

	res, err := app.New(opts...).Run(ctx, in)
	if err != nil {
		return err
	}
	if !full {
		res.Career = nil
	}
	start := time.Now()
	if err := app.Publish(ctx, cfg, log, res); err != nil {
		metrics.RecordRunError(app.PhasePublish)
		return err
	}
	metrics.RecordPhaseDuration(app.PhasePublish, float64(time.Since(start).Microseconds())/1000)

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, metrics.GetRegistry()); err != nil {
			log.Warn(ctx, "failed to write metrics textfile", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
		}
	}

	return printSummary(out, res)
}

func printSummary(out io.Writer, res *app.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOARD\tPLAYERS\tLEADER\tSCORE")
	if res.Career != nil && len(res.Career.Players) > 0 {
		top := res.Career.Players[0]
		fmt.Fprintf(w, "%s\t%d\t%s\t%.1f\n", repository.BoardCareer, len(res.Career.Players), top.Name, top.GoatScore)
	}
	if res.Recent != nil && len(res.Recent.Players) > 0 {
		top := res.Recent.Players[0]
		fmt.Fprintf(w, "%s\t%d\t%s\t%.1f\n", repository.BoardRecent, len(res.Recent.Players), top.Name, top.Score)
	}
	return w.Flush()
}

func runHistory(ctx context.Context, out io.Writer, limit int) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return repository.ErrNoHistoryPath
	}
	if _, err := os.Stat(cfg.HistoryDB); err != nil {
		return fmt.Errorf("history database %s: %w", cfg.HistoryDB, err)
	}

	history, err := repository.NewSQLiteHistory(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = history.Close() }()

	runs, err := history.ListRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	return printRuns(out, runs)
}

func printRuns(out io.Writer, runs []repository.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(out, "no runs recorded (try: goatboard rank)")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tBOARD\tGENERATED\tPLAYERS\tLEADER\tSCORE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.1f\n",
			r.ID, r.Board, r.GeneratedAt.Format(time.RFC3339), r.Players, r.TopPersonID, r.TopScore)
	}
	return w.Flush()
}
