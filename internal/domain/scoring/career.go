// Package scoring computes raw, unbounded component values from
// finalized totals. Normalization happens later, once the whole
// population is known.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/goatboard/internal/domain/aggregate"
	"github.com/okian/goatboard/internal/domain/model"
)

// Culture bonuses.
const (
	internationalBonus = 30.0
	lotteryTopBonus    = 12.0 // picks 1-3
	lotteryBonus       = 8.0  // picks 4-14
	firstRoundBonus    = 4.0  // picks 15-30
)

var domesticCountries = map[string]struct{}{
	"USA": {}, "US": {}, "UNITED STATES": {},
}

// CareerResult is the raw career breakdown for one player.
type CareerResult struct {
	PersonID   string
	Components model.CareerComponents

	DocumentedChampionships int
	Championships           int
	MissingChampionships    int
	FinalsMVPs              int

	WinPct        float64
	PlayoffWinPct float64
}

// Option applies a configuration option to the CareerScorer.
type Option func(*CareerScorer)

// WithChampionshipSource sets the source of championship overrides.
func WithChampionshipSource(src ChampionshipSource) Option {
	return func(s *CareerScorer) {
		if src != nil {
			s.championships = src
		}
	}
}

// WithFinalsMVPs sets the Finals MVP ledger.
func WithFinalsMVPs(ledger model.FinalsMVPLedger) Option {
	return func(s *CareerScorer) {
		s.mvps = ledger
	}
}

// CareerScorer computes the five raw career components.
type CareerScorer struct {
	championships ChampionshipSource
	mvps          model.FinalsMVPLedger
}

// NewCareerScorer creates a scorer with no overrides and no MVP ledger.
func NewCareerScorer(opts ...Option) *CareerScorer {
	s := &CareerScorer{
		championships: NoOverrides{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the raw components for one player.
func (s *CareerScorer) Score(t aggregate.CareerTotals, meta model.PlayerMeta) CareerResult {
	g := float64(t.Games)
	pw, pg := float64(t.PlayoffWins), float64(t.PlayoffGames)
	w := float64(t.Wins)
	stocks := t.Steals + t.Blocks

	nameKey := meta.NameKey()
	mvps := s.mvps.CountFor(nameKey)

	documented := DocumentedChampionships(t.FinalsSeasons)
	rings := documented
	if override, ok := s.championships.OverrideFor(nameKey); ok && override > documented {
		rings = override
	}
	missing := rings - documented

	res := CareerResult{
		PersonID:                t.PersonID,
		DocumentedChampionships: documented,
		Championships:           rings,
		MissingChampionships:    missing,
		FinalsMVPs:              mvps,
	}

	var impact float64
	if t.Games > 0 {
		production := (t.Points + 1.25*t.Assists + 1.1*t.Rebounds + 1.5*stocks) / g
		impact = production * (0.6 + t.Minutes/g)
		res.WinPct = w / g
	}
	if t.PlayoffGames > 0 {
		res.PlayoffWinPct = pw / pg
	}

	res.Components = model.CareerComponents{
		Impact:      impact,
		Stage:       stage(t, rings, missing, mvps),
		Longevity:   t.Minutes + g*5,
		Versatility: versatility(t, meta),
		Culture:     culture(t, meta, rings, missing, mvps),
	}
	return res
}

func stage(t aggregate.CareerTotals, rings, missing, mvps int) float64 {
	pw, pg := float64(t.PlayoffWins), float64(t.PlayoffGames)
	fw, fg := float64(t.FinalsWins), float64(t.FinalsGames)

	var finalsRate, finalsEff, playoffEff float64
	if t.FinalsGames > 0 {
		finalsRate = fw / fg
		finalsEff = finalsRate * 220 * (math.Sqrt(fg) / 10)
	}
	if t.PlayoffGames > 0 {
		playoffEff = (pw / pg) * 200 * (math.Sqrt(pg) / 20)
	}

	var mvpStage float64
	if mvps > 0 {
		mvpStage = math.Sqrt(float64(mvps))*200 + float64(mvps)*110
	}

	v := math.Sqrt(pw)*35 +
		math.Sqrt(pg)*10 +
		math.Sqrt(fw)*55 +
		math.Sqrt(fg)*20 +
		math.Sqrt(float64(rings))*110 +
		math.Sqrt(float64(missing))*90 +
		float64(missing)*55 +
		finalsEff +
		playoffEff +
		pw*1.15 +
		pg*0.05 +
		float64(t.Wins)*0.02 +
		mvpStage

	if t.FinalsGames >= 20 {
		v += finalsRate * finalsRate * 180
	}
	losses := max(t.FinalsGames-t.FinalsWins, 0)
	if losses > 0 {
		v -= math.Sqrt(float64(losses)) * 40
	}
	if t.FinalsGames > 0 && losses == 0 && rings >= 3 {
		v += 160
	}
	return v
}

func versatility(t aggregate.CareerTotals, meta model.PlayerMeta) float64 {
	v := float64(meta.Positions())*40 + float64(len(t.Teams))*12
	if t.Games > 0 {
		g := float64(t.Games)
		v += (t.Assists/g)*18 + (t.Rebounds/g)*12 + ((t.Steals+t.Blocks)/g)*14
	}
	return v
}

func culture(t aggregate.CareerTotals, meta model.PlayerMeta, rings, missing, mvps int) float64 {
	return float64(rings)*55 +
		float64(missing)*25 +
		float64(t.Wins)*0.08 +
		float64(t.PlayoffWins)*0.35 +
		float64(len(t.Teams))*6 +
		InternationalBonus(meta.Country) +
		DraftBonus(meta.DraftNumber) +
		float64(mvps)*50
}

// InternationalBonus rewards players whose recorded country is not the US.
func InternationalBonus(country string) float64 {
	country = strings.TrimSpace(country)
	if country == "" {
		return 0
	}
	if _, ok := domesticCountries[strings.ToUpper(country)]; ok {
		return 0
	}
	return internationalBonus
}

// DraftBonus rewards early draft picks. Undrafted (0) earns nothing.
func DraftBonus(pick int) float64 {
	switch {
	case pick <= 0:
		return 0
	case pick <= 3:
		return lotteryTopBonus
	case pick <= 14:
		return lotteryBonus
	case pick <= 30:
		return firstRoundBonus
	default:
		return 0
	}
}
