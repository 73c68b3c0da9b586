package aggregate

import (
	"sort"
	"time"
)

// FinalsSeason counts finals games and wins within one calendar year.
type FinalsSeason struct {
	Games int
	Wins  int
}

// CareerTotals accumulates a player's lifetime box-score sums.
type CareerTotals struct {
	PersonID string

	Games   int
	Wins    int
	Losses  int
	Minutes float64

	Points   float64
	Assists  float64
	Rebounds float64
	Steals   float64
	Blocks   float64

	PlayoffGames int
	PlayoffWins  int
	FinalsGames  int
	FinalsWins   int

	// FinalsSeasons is keyed by calendar year of the finals games.
	FinalsSeasons map[int]FinalsSeason

	// Teams holds "<city> <name>" keys.
	Teams map[string]struct{}

	// FirstSeason and LastSeason are calendar years; 0 when unknown.
	FirstSeason int
	LastSeason  int
}

func newCareerTotals(id string) CareerTotals {
	return CareerTotals{
		PersonID:      id,
		FinalsSeasons: make(map[int]FinalsSeason),
		Teams:         make(map[string]struct{}),
	}
}

// TeamList returns the team keys sorted.
func (c CareerTotals) TeamList() []string {
	out := make([]string, 0, len(c.Teams))
	for team := range c.Teams {
		out = append(out, team)
	}
	sort.Strings(out)
	return out
}

// HasSeasons reports whether any dated game was seen.
func (c CareerTotals) HasSeasons() bool {
	return c.FirstSeason != 0 && c.LastSeason != 0
}

func (c *CareerTotals) markSeason(year int) {
	if c.FirstSeason == 0 || year < c.FirstSeason {
		c.FirstSeason = year
	}
	if year > c.LastSeason {
		c.LastSeason = year
	}
}

// RecentTotals accumulates a player's box-score sums inside the rolling window.
type RecentTotals struct {
	PersonID string

	Games   int
	Wins    int
	Minutes float64

	Points    float64
	Assists   float64
	Rebounds  float64
	Steals    float64
	Blocks    float64
	PlusMinus float64

	// Seasons holds the season years the player appeared in.
	Seasons map[int]struct{}

	// LastGame and the team fields describe the most recent game seen.
	LastGame time.Time
	TeamCity string
	TeamName string
}

func newRecentTotals(id string) RecentTotals {
	return RecentTotals{
		PersonID: id,
		Seasons:  make(map[int]struct{}),
	}
}

// Losses is games minus wins, never negative.
func (r RecentTotals) Losses() int {
	return max(r.Games-r.Wins, 0)
}

// SeasonList returns the season years sorted.
func (r RecentTotals) SeasonList() []int {
	out := make([]int, 0, len(r.Seasons))
	for year := range r.Seasons {
		out = append(out, year)
	}
	sort.Ints(out)
	return out
}
