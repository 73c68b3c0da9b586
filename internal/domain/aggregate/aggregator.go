// Package aggregate folds box-score records into per-player career and
// rolling-window totals.
//
// The Aggregator exclusively owns the totals while records stream in.
// Finalize hands back a read-only Result ordered by person id; nothing
// mutates totals after that.
package aggregate

import (
	"sort"
	"strings"

	"github.com/okian/goatboard/internal/domain/model"
)

// Default rolling window.
const (
	DefaultWindowStart = 2022
	DefaultWindowSpan  = 3
)

// Coverage is the range of calendar years seen across all dated games.
type Coverage struct {
	FirstSeason int
	LastSeason  int
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithWindow sets the rolling window used for recent totals.
func WithWindow(w model.Window) Option {
	return func(a *Aggregator) {
		if w.Span > 0 {
			a.window = w
		}
	}
}

// WithActiveIDs sets the player ids eligible for recent totals.
// Every id gets a RecentTotals, even without games in the window.
func WithActiveIDs(ids []string) Option {
	return func(a *Aggregator) {
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := a.recentIdx[id]; ok {
				continue
			}
			a.recentIdx[id] = len(a.recent)
			a.recent = append(a.recent, newRecentTotals(id))
		}
	}
}

// Aggregator accumulates totals from a single forward pass over records.
type Aggregator struct {
	window model.Window

	career    []CareerTotals
	careerIdx map[string]int

	recent    []RecentTotals
	recentIdx map[string]int

	// names seen in box scores, used when the registry lacks a player
	names map[string]model.PlayerMeta

	coverage  Coverage
	read      int
	skipped   int
	finalized bool
}

// New constructs an Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		window:    model.Window{Start: DefaultWindowStart, Span: DefaultWindowSpan},
		careerIdx: make(map[string]int),
		recentIdx: make(map[string]int),
		names:     make(map[string]model.PlayerMeta),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Add folds one record into the totals. Records without a person id
// return ErrMissingPersonID and are otherwise ignored.
func (a *Aggregator) Add(rec model.BoxScoreRecord) error {
	if a.finalized {
		return ErrFinalized
	}
	a.read++

	id := strings.TrimSpace(rec.PersonID)
	if id == "" {
		a.skipped++
		return ErrMissingPersonID
	}

	a.addCareer(id, rec)
	a.addRecent(id, rec)
	a.rememberName(id, rec)
	return nil
}

func (a *Aggregator) addCareer(id string, rec model.BoxScoreRecord) {
	i, ok := a.careerIdx[id]
	if !ok {
		i = len(a.career)
		a.careerIdx[id] = i
		a.career = append(a.career, newCareerTotals(id))
	}
	c := &a.career[i]

	c.Games++
	c.Minutes += rec.Minutes
	c.Points += rec.Points
	c.Assists += rec.Assists
	c.Rebounds += rec.Rebounds
	c.Steals += rec.Steals
	c.Blocks += rec.Blocks
	if rec.Win {
		c.Wins++
	} else {
		c.Losses++
	}

	if strings.EqualFold(strings.TrimSpace(rec.GameType), "playoffs") {
		c.PlayoffGames++
		if rec.Win {
			c.PlayoffWins++
		}
	}

	if strings.Contains(strings.ToLower(rec.GameLabel), "nba finals") {
		c.FinalsGames++
		if rec.Win {
			c.FinalsWins++
		}
		if rec.HasDate() {
			year := rec.GameDate.Year()
			bucket := c.FinalsSeasons[year]
			bucket.Games++
			if rec.Win {
				bucket.Wins++
			}
			c.FinalsSeasons[year] = bucket
		}
	}

	if team := rec.TeamKey(); team != "" {
		c.Teams[team] = struct{}{}
	}

	if rec.HasDate() {
		year := rec.GameDate.Year()
		c.markSeason(year)
		if a.coverage.FirstSeason == 0 || year < a.coverage.FirstSeason {
			a.coverage.FirstSeason = year
		}
		if year > a.coverage.LastSeason {
			a.coverage.LastSeason = year
		}
	}
}

func (a *Aggregator) addRecent(id string, rec model.BoxScoreRecord) {
	i, ok := a.recentIdx[id]
	if !ok || !rec.HasDate() || rec.Minutes <= 0 {
		return
	}
	season := model.SeasonYear(rec.GameDate)
	if !a.window.Contains(season) {
		return
	}
	r := &a.recent[i]

	r.Games++
	if rec.Win {
		r.Wins++
	}
	r.Minutes += rec.Minutes
	r.Points += rec.Points
	r.Assists += rec.Assists
	r.Rebounds += rec.Rebounds
	r.Steals += rec.Steals
	r.Blocks += rec.Blocks
	r.PlusMinus += rec.PlusMinus
	r.Seasons[season] = struct{}{}

	if r.LastGame.IsZero() || rec.GameDate.After(r.LastGame) {
		r.LastGame = rec.GameDate
		r.TeamCity = strings.TrimSpace(rec.TeamCity)
		r.TeamName = strings.TrimSpace(rec.TeamName)
	}
}

func (a *Aggregator) rememberName(id string, rec model.BoxScoreRecord) {
	if _, ok := a.names[id]; ok {
		return
	}
	first, last := strings.TrimSpace(rec.FirstName), strings.TrimSpace(rec.LastName)
	if first == "" && last == "" {
		return
	}
	a.names[id] = model.PlayerMeta{PersonID: id, FirstName: first, LastName: last}
}

// Result is the finalized, read-only output of an Aggregator.
type Result struct {
	// Career is ordered by person id.
	Career []CareerTotals
	// Recent is ordered by person id and only holds active ids.
	Recent []RecentTotals
	// Names are box-score names for ids, used to synthesize missing registry rows.
	Names    map[string]model.PlayerMeta
	Coverage Coverage
	Window   model.Window
	Read     int
	Skipped  int

	careerIdx map[string]int
}

// CareerFor returns the totals for id.
func (r *Result) CareerFor(id string) (CareerTotals, bool) {
	i, ok := r.careerIdx[id]
	if !ok {
		return CareerTotals{}, false
	}
	return r.Career[i], true
}

// Finalize ends accumulation and returns the result. Calling Add afterwards
// returns ErrFinalized.
func (a *Aggregator) Finalize() *Result {
	a.finalized = true

	career := append([]CareerTotals(nil), a.career...)
	sort.Slice(career, func(i, j int) bool {
		return model.ComparePersonID(career[i].PersonID, career[j].PersonID) < 0
	})
	idx := make(map[string]int, len(career))
	for i := range career {
		idx[career[i].PersonID] = i
	}

	recent := append([]RecentTotals(nil), a.recent...)
	sort.Slice(recent, func(i, j int) bool {
		return model.ComparePersonID(recent[i].PersonID, recent[j].PersonID) < 0
	})

	return &Result{
		Career:    career,
		Recent:    recent,
		Names:     a.names,
		Coverage:  a.coverage,
		Window:    a.window,
		Read:      a.read,
		Skipped:   a.skipped,
		careerIdx: idx,
	}
}
