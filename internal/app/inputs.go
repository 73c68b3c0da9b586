package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/okian/goatboard/internal/adapters/output"
	"github.com/okian/goatboard/internal/adapters/source"
	"github.com/okian/goatboard/internal/config"
	"github.com/okian/goatboard/pkg/logger"
)

// OpenInputs opens the box-score stream and loads every optional input
// named by cfg. Optional inputs that are unset or unreadable are logged
// and left empty. The returned closer releases the box-score stream.
func OpenInputs(ctx context.Context, cfg *config.Config, log logger.Logger) (Inputs, io.Closer, error) {
	records, err := source.OpenBoxScores(cfg.StatsPath)
	if err != nil {
		return Inputs{}, nil, err
	}

	in := Inputs{Records: records}

	if players, err := source.LoadPlayers(cfg.PlayersPath); err != nil {
		warnOptional(ctx, log, "player registry", cfg.PlayersPath, err)
	} else {
		in.Players = players
	}

	if teams, err := source.LoadTeams(cfg.TeamsPath); err != nil {
		warnOptional(ctx, log, "team histories", cfg.TeamsPath, err)
	} else {
		in.Teams = teams
	}

	if ids, err := source.LoadActiveIDs(cfg.ActiveIDsPath); err != nil {
		warnOptional(ctx, log, "active ids", cfg.ActiveIDsPath, err)
	} else {
		in.ActiveIDs = ids
	}

	if feed, err := source.LoadBaseline(cfg.BaselinePath); err != nil {
		warnOptional(ctx, log, "baseline feed", cfg.BaselinePath, err)
	} else {
		in.Baseline = feed
	}

	if ledger, err := source.LoadFinalsMVPs(cfg.FinalsMVPPath); err != nil {
		warnOptional(ctx, log, "finals mvp ledger", cfg.FinalsMVPPath, err)
	} else {
		in.FinalsMVPs = ledger
	}

	log.Info(ctx, "inputs loaded",
		logger.String("stats", cfg.StatsPath),
		logger.Int("players", len(in.Players)),
		logger.Int("teams", len(in.Teams)),
		logger.Int("active", len(in.ActiveIDs)),
		logger.Int("baseline", len(in.Baseline.Players)),
		logger.Int("finalsMvps", len(in.FinalsMVPs)),
	)
	return in, records, nil
}

func warnOptional(ctx context.Context, log logger.Logger, what, path string, err error) {
	if errors.Is(err, source.ErrEmptyPath) {
		log.Debug(ctx, "optional input not configured", logger.String("input", what))
		return
	}
	log.Warn(ctx, "optional input unavailable, continuing without it",
		logger.String("input", what),
		logger.String("path", path),
		logger.Error(err),
	)
}

// Publish writes the documents present in res to cfg's output directory.
func Publish(ctx context.Context, cfg *config.Config, log logger.Logger, res *Result) error {
	if res.Career != nil {
		path := filepath.Join(cfg.OutputDir, cfg.CareerOutput)
		if err := output.WriteFile(path, res.Career); err != nil {
			return err
		}
		log.Info(ctx, "career document written", logger.String("path", path), logger.Int("players", len(res.Career.Players)))
	}
	if res.Recent != nil {
		path := filepath.Join(cfg.OutputDir, cfg.RecentOutput)
		if err := output.WriteFile(path, res.Recent); err != nil {
			return err
		}
		log.Info(ctx, "recent document written", logger.String("path", path), logger.Int("players", len(res.Recent.Players)))
	}
	return nil
}
