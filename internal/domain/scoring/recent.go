package scoring

import (
	"math"

	"github.com/okian/goatboard/internal/domain/aggregate"
	"github.com/okian/goatboard/internal/domain/model"
)

// Recent-form sample thresholds.
const (
	GamesPerSeason    = 82
	RecentMinGames    = 25
	RecentMinMinutes  = 600.0
	minutesPerPer36   = 36.0
	defaultRecentSpan = 3
)

// RecentScorer computes the three raw recent-form components.
type RecentScorer struct {
	maxGames   float64
	minGames   float64
	minMinutes float64
}

// RecentOption applies a configuration option to the RecentScorer.
type RecentOption func(*RecentScorer)

// WithSeasonSpan sizes the availability ceiling for a window of span seasons.
func WithSeasonSpan(span int) RecentOption {
	return func(s *RecentScorer) {
		if span > 0 {
			s.maxGames = float64(GamesPerSeason * span)
		}
	}
}

// NewRecentScorer creates a scorer for the default three-season window.
func NewRecentScorer(opts ...RecentOption) *RecentScorer {
	s := &RecentScorer{
		maxGames:   float64(GamesPerSeason * defaultRecentSpan),
		minGames:   RecentMinGames,
		minMinutes: RecentMinMinutes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Confidence discounts small samples: min(1, games/minGames, minutes/minMinutes).
func (s *RecentScorer) Confidence(games int, minutes float64) float64 {
	c := 1.0
	if s.minGames > 0 {
		c = math.Min(c, float64(games)/s.minGames)
	}
	if s.minMinutes > 0 {
		c = math.Min(c, minutes/s.minMinutes)
	}
	return math.Max(0, c)
}

// Score computes raw components. Players without minutes score zero.
func (s *RecentScorer) Score(t aggregate.RecentTotals) model.RecentComponents {
	if t.Minutes <= 0 {
		return model.RecentComponents{}
	}

	per36 := func(v float64) float64 { return v / t.Minutes * minutesPerPer36 }
	conf := s.Confidence(t.Games, t.Minutes)

	production := per36(t.Points) +
		1.5*per36(t.Assists) +
		1.1*per36(t.Rebounds) +
		3*per36(t.Steals+t.Blocks)

	var plusMinus float64
	if t.Games > 0 {
		plusMinus = t.PlusMinus / float64(t.Games)
	}

	gameShare := math.Min(float64(t.Games)/s.maxGames, 1)
	minuteShare := math.Min(t.Minutes/(s.maxGames*minutesPerPer36), 1)

	return model.RecentComponents{
		Production:   math.Max(production, 0) * conf,
		Impact:       math.Max(plusMinus, 0) * conf,
		Availability: (gameShare + minuteShare) / 2,
	}
}
