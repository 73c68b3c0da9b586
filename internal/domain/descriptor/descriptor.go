// Package descriptor builds the display fields that accompany a ranked
// player: career span, prime window, resume, franchises, status and the
// recent-form blurb.
package descriptor

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/okian/goatboard/internal/domain/model"
)

// Player statuses.
const (
	StatusActive    = "Active"
	StatusLegend    = "Legend"
	StatusProspect  = "Prospect"
	StatusFreeAgent = "Free Agent"
)

const (
	unknownSpan    = "—"
	awaitingImpact = "Awaiting NBA impact"
	primeSeasons   = 4
	partSeparator  = " · "
	freeAgentTeam  = "Free Agent"
)

// CareerSpan formats "first-last", or the unknown-span marker when either is zero.
func CareerSpan(first, last int) string {
	if first == 0 || last == 0 {
		return unknownSpan
	}
	return fmt.Sprintf("%d-%d", first, last)
}

// PrimeWindow is the last five seasons of a career, falling back to an
// external value. Empty when neither is known.
func PrimeWindow(first, last int, fallback string) string {
	if first != 0 && last != 0 {
		return fmt.Sprintf("%d-%d", max(first, last-primeSeasons), last)
	}
	return strings.TrimSpace(fallback)
}

// Resume summarizes career totals. An external resume is appended, or
// used alone when the player has no games.
func Resume(points, assists, rebounds float64, games int, external string) string {
	external = strings.TrimSpace(external)
	if games <= 0 {
		if external != "" {
			return external
		}
		return awaitingImpact
	}
	s := fmt.Sprintf("%s pts · %s ast · %s reb in %s games",
		humanize.Comma(roundHalfEven(points)),
		humanize.Comma(roundHalfEven(assists)),
		humanize.Comma(roundHalfEven(rebounds)),
		humanize.Comma(int64(games)),
	)
	if external != "" {
		s += partSeparator + external
	}
	return s
}

// Franchises maps team keys through the abbreviation lookup, falling
// back to the last word of the key. Sorted and unique.
func Franchises(teams []string, lookup map[string]string) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		if team == "" {
			continue
		}
		abbr, ok := lookup[team]
		if !ok {
			fields := strings.Fields(team)
			abbr = fields[len(fields)-1]
		}
		if _, dup := seen[abbr]; dup {
			continue
		}
		seen[abbr] = struct{}{}
		out = append(out, abbr)
	}
	sort.Strings(out)
	return out
}

// Franchise resolves a single team key the same way Franchises does.
func Franchise(team string, lookup map[string]string) string {
	if f := Franchises([]string{team}, lookup); len(f) == 1 {
		return f[0]
	}
	return ""
}

// Status is Active when the last season is within a year of now, Legend
// for anyone else with games, Prospect otherwise.
func Status(lastSeason, games int, now time.Time) string {
	switch {
	case lastSeason != 0 && lastSeason >= now.Year()-1:
		return StatusActive
	case games > 0:
		return StatusLegend
	default:
		return StatusProspect
	}
}

// RecentStatus adapts a career status for the recent board: retired
// labels read as Active, and players without a team are free agents.
func RecentStatus(careerStatus, team string) string {
	status := strings.TrimSpace(careerStatus)
	if status == "" {
		status = StatusActive
	}
	switch strings.ToLower(status) {
	case "legend", "retired":
		status = StatusActive
	}
	if strings.EqualFold(strings.TrimSpace(team), freeAgentTeam) {
		status = StatusFreeAgent
	}
	return status
}

// RecentTeam is the team name of the last game, or "Free Agent".
func RecentTeam(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return freeAgentTeam
}

// RecentBlurb formats "<g> games · <w>-<l> record · <season span>",
// omitting empty parts.
func RecentBlurb(games, wins int, seasons []int) string {
	losses := max(games-wins, 0)
	parts := make([]string, 0, 3)
	if games > 0 {
		parts = append(parts, fmt.Sprintf("%d games", games))
	}
	if wins > 0 || losses > 0 {
		parts = append(parts, fmt.Sprintf("%d-%d record", wins, losses))
	}
	if span := model.SeasonSpan(seasons); span != "" {
		parts = append(parts, span)
	}
	return strings.Join(parts, partSeparator)
}

func roundHalfEven(v float64) int64 {
	return int64(math.RoundToEven(v))
}

// RoundCount rounds a summed stat to a whole number.
func RoundCount(v float64) int {
	return int(roundHalfEven(v))
}
