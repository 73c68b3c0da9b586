// Package ranking bounds final scores and classifies players into tiers.
package ranking

import (
	"math"
	"strings"

	"github.com/okian/goatboard/internal/domain/normalize"
)

// Score bounds.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Scored is a player's final score before ranking.
type Scored struct {
	PersonID string
	Score    float64
}

// Ranked is a player's position on a board. Ranks run 1..N with ties
// broken by ascending person id.
type Ranked struct {
	Rank     int
	PersonID string
	Score    float64
}

// FinalScore rounds a component sum to one decimal and clamps it to [0, 100].
func FinalScore(sum float64) float64 {
	if math.IsNaN(sum) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, normalize.Round(sum, 1)))
}

// Tier thresholds, highest first.
var tiers = []struct {
	min  float64
	name string
}{
	{92, "Pantheon"},
	{80, "Inner Circle"},
	{68, "All-Time Great"},
	{52, "Hall of Fame"},
	{36, "All-Star"},
	{22, "Starter"},
	{10, "Rotation"},
}

// TierReserve is the tier below every threshold.
const TierReserve = "Reserve"

// Tier classifies a score.
func Tier(score float64) string {
	for _, t := range tiers {
		if score >= t.min {
			return t.name
		}
	}
	return TierReserve
}

// ResolveTier prefers an explicit label over the score classification.
func ResolveTier(label string, score float64) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	return Tier(score)
}
