package service

import (
	"context"
	"sort"
	"time"

	"github.com/okian/goatboard/internal/adapters/output"
	"github.com/okian/goatboard/internal/domain/aggregate"
	"github.com/okian/goatboard/internal/domain/baseline"
	"github.com/okian/goatboard/internal/domain/descriptor"
	"github.com/okian/goatboard/internal/domain/model"
	"github.com/okian/goatboard/internal/domain/normalize"
	"github.com/okian/goatboard/internal/domain/ranking"
	"github.com/okian/goatboard/internal/domain/scoring"
	"github.com/okian/goatboard/pkg/logger"
)

// boardBuilder holds the shared state of one run's scoring phases.
type boardBuilder struct {
	engine  *Engine
	log     logger.Logger
	now     time.Time
	agg     *aggregate.Result
	in      Inputs
	index   *baseline.Index
	history map[string]float64

	careerRows map[string]output.CareerRow
}

type careerBoard struct {
	doc    *output.CareerDocument
	byID   int
	byName int
}

type careerPlayer struct {
	meta   model.PlayerMeta
	totals aggregate.CareerTotals
	match  baseline.Match
	result scoring.CareerResult
	scaled model.CareerComponents
	score  float64
}

// population is the registry plus every id seen in the box scores,
// ordered by person id.
func (b *boardBuilder) population() []string {
	n := len(b.in.Players) + len(b.agg.Career)
	seen := make(map[string]struct{}, n)
	ids := make([]string, 0, n)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for id := range b.in.Players {
		add(id)
	}
	for _, t := range b.agg.Career {
		add(t.PersonID)
	}
	sort.Slice(ids, func(i, j int) bool { return model.ComparePersonID(ids[i], ids[j]) < 0 })
	return ids
}

// meta returns the registry row, synthesizing one from box-score names.
func (b *boardBuilder) meta(id string) model.PlayerMeta {
	if m, ok := b.in.Players[id]; ok {
		if m.FirstName == "" && m.LastName == "" {
			if n, ok := b.agg.Names[id]; ok {
				m.FirstName, m.LastName = n.FirstName, n.LastName
			}
		}
		return m
	}
	if n, ok := b.agg.Names[id]; ok {
		return n
	}
	return model.PlayerMeta{PersonID: id}
}

func (b *boardBuilder) championships() scoring.ChampionshipSource {
	if b.engine.championships != nil {
		return b.engine.championships
	}
	return scoring.NewResumeOverrides(b.index.Resumes())
}

func (b *boardBuilder) career(ctx context.Context) (*careerBoard, error) {
	scorer := scoring.NewCareerScorer(
		scoring.WithChampionshipSource(b.championships()),
		scoring.WithFinalsMVPs(b.in.FinalsMVPs),
	)
	norm := normalize.NewCareer()

	ids := b.population()
	players := make([]careerPlayer, len(ids))
	raw := make([][]float64, len(ids))
	board := &careerBoard{}
	for i, id := range ids {
		meta := b.meta(id)
		totals, ok := b.agg.CareerFor(id)
		if !ok {
			totals = aggregate.CareerTotals{PersonID: id}
		}
		match := b.index.Resolve(id, meta.NameKey())
		b.engine.metrics.RecordBaselineMatch(match.Kind.String())
		switch match.Kind {
		case baseline.ByID:
			board.byID++
		case baseline.ByName:
			board.byName++
			b.log.Debug(ctx, "baseline matched by name",
				logger.String("personId", id),
				logger.String("name", meta.Name()),
			)
		}

		result := scorer.Score(totals, meta)
		players[i] = careerPlayer{meta: meta, totals: totals, match: match, result: result}
		raw[i] = result.Components.Values()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxima := norm.Maxima(raw)
	scored := make([]ranking.Scored, len(players))
	for i := range players {
		p := &players[i]
		scaled := norm.Scale(raw[i], maxima, b.index.Baseline(p.match))
		p.scaled = model.CareerComponentsFrom(scaled)
		p.score = ranking.FinalScore(normalize.Sum(scaled))
		scored[i] = ranking.Scored{PersonID: ids[i], Score: p.score}
	}

	byID := make(map[string]*careerPlayer, len(players))
	for i := range players {
		byID[ids[i]] = &players[i]
	}

	ranked := rankBoard(scored, 0)
	rows := make([]output.CareerRow, len(ranked))
	b.careerRows = make(map[string]output.CareerRow, len(ranked))
	for i, r := range ranked {
		rows[i] = b.careerRow(r, byID[r.PersonID])
		b.careerRows[r.PersonID] = rows[i]
	}

	board.doc = &output.CareerDocument{
		GeneratedAt: b.now.Format(time.RFC3339),
		Weights:     output.Weights(b.index.GeneratedAt()),
		Coverage: output.Coverage{
			Players:     len(rows),
			SeasonRange: seasonRange(b.agg.Coverage),
		},
		Players: rows,
	}
	if ts := b.index.GeneratedAt(); ts != "" {
		board.doc.SourceTimestamps = map[string]string{"baseline": ts}
	}

	b.log.Info(ctx, "career board ranked",
		logger.Int("players", len(rows)),
		logger.Int("baselineById", board.byID),
		logger.Int("baselineByName", board.byName),
	)
	return board, nil
}

func (b *boardBuilder) careerRow(r ranking.Ranked, p *careerPlayer) output.CareerRow {
	t := p.totals
	var entry baseline.Entry
	if p.match.Found() {
		entry = *p.match.Entry
	}

	first, last := t.FirstSeason, t.LastSeason
	if !t.HasSeasons() && p.meta.DraftYear > 0 {
		first, last = p.meta.DraftYear, p.meta.DraftYear
	}

	var prime *string
	if w := descriptor.PrimeWindow(first, last, entry.PrimeWindow); w != "" {
		prime = &w
	}

	franchises := descriptor.Franchises(t.TeamList(), b.in.Teams)
	if len(franchises) == 0 && len(entry.Franchises) > 0 {
		franchises = append([]string(nil), entry.Franchises...)
	}

	return output.CareerRow{
		PersonID:       r.PersonID,
		Rank:           r.Rank,
		Name:           p.meta.Name(),
		GoatScore:      r.Score,
		Tier:           ranking.ResolveTier(entry.Tier, r.Score),
		Status:         descriptor.Status(t.LastSeason, t.Games, b.now),
		CareerSpan:     descriptor.CareerSpan(first, last),
		PrimeWindow:    prime,
		Delta:          b.delta(r, entry),
		Franchises:     franchises,
		Resume:         descriptor.Resume(t.Points, t.Assists, t.Rebounds, t.Games, entry.Resume),
		GoatComponents: p.scaled,
		WinPct:         normalize.Round(p.result.WinPct, 3),
		PlayoffWinPct:  normalize.Round(p.result.PlayoffWinPct, 3),
		FinalsMVPs:     p.result.FinalsMVPs,
	}
}

// delta prefers the baseline's own movement, then the change since the
// previous recorded run.
func (b *boardBuilder) delta(r ranking.Ranked, entry baseline.Entry) float64 {
	if entry.Delta != nil {
		return *entry.Delta
	}
	if prev, ok := b.history[r.PersonID]; ok {
		return normalize.Round(r.Score-prev, 1)
	}
	return 0
}

func (b *boardBuilder) recent(ctx context.Context) (*output.RecentDocument, error) {
	scorer := scoring.NewRecentScorer(scoring.WithSeasonSpan(b.agg.Window.Span))
	norm := normalize.NewRecent()

	totals := b.agg.Recent
	raw := make([][]float64, len(totals))
	for i, t := range totals {
		raw[i] = scorer.Score(t).Values()
	}
	maxima := norm.Maxima(raw)

	scored := make([]ranking.Scored, len(totals))
	byID := make(map[string]int, len(totals))
	for i, t := range totals {
		scaled := norm.Scale(raw[i], maxima, normalize.Baseline{})
		scored[i] = ranking.Scored{PersonID: t.PersonID, Score: ranking.FinalScore(normalize.Sum(scaled))}
		byID[t.PersonID] = i
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := rankBoard(scored, b.engine.recentLimit)

	rows := make([]output.RecentRow, len(ranked))
	for i, r := range ranked {
		rows[i] = b.recentRow(r, totals[byID[r.PersonID]])
	}

	b.log.Info(ctx, "recent board ranked",
		logger.Int("active", len(totals)),
		logger.Int("published", len(rows)),
		logger.String("window", b.agg.Window.Label()),
	)
	return &output.RecentDocument{
		GeneratedAt: b.now.Format(time.RFC3339),
		Window:      b.agg.Window.Label(),
		Metric:      output.RecentMetric,
		Players:     rows,
	}, nil
}

func (b *boardBuilder) recentRow(r ranking.Ranked, t aggregate.RecentTotals) output.RecentRow {
	team := descriptor.RecentTeam(t.TeamName)
	row := output.RecentRow{
		Rank:      r.Rank,
		PersonID:  r.PersonID,
		Name:      b.meta(r.PersonID).Name(),
		Team:      team,
		Franchise: descriptor.Franchise(model.TeamKey(t.TeamCity, t.TeamName), b.in.Teams),
		Score:     r.Score,
		Blurb:     descriptor.RecentBlurb(t.Games, t.Wins, t.SeasonList()),
		Points:    descriptor.RoundCount(t.Points),
		Assists:   descriptor.RoundCount(t.Assists),
		Rebounds:  descriptor.RoundCount(t.Rebounds),
		Blocks:    descriptor.RoundCount(t.Blocks),
	}

	career, ok := b.careerRows[r.PersonID]
	if !ok {
		row.Status = descriptor.RecentStatus("", team)
		return row
	}
	row.Tier = career.Tier
	row.Resume = career.Resume
	if len(career.Franchises) > 0 {
		row.Franchises = career.Franchises
	}
	row.Status = descriptor.RecentStatus(career.Status, team)
	return row
}

func seasonRange(c aggregate.Coverage) output.SeasonRange {
	var r output.SeasonRange
	if c.FirstSeason != 0 {
		first := c.FirstSeason
		r.Start = &first
	}
	if c.LastSeason != 0 {
		last := c.LastSeason
		r.End = &last
	}
	return r
}
