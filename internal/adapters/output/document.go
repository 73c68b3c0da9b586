// Package output defines the published career and recent-form documents
// and writes them to disk.
package output

import "github.com/okian/goatboard/internal/domain/model"

// RecentMetric names the recent-form index in its document.
const RecentMetric = "Rolling three-year GOAT index"

// Source describes one input feeding a component.
type Source struct {
	Name         string   `json:"name"`
	Contribution string   `json:"contribution"`
	Fields       []string `json:"fields"`
	LastUpdated  string   `json:"lastUpdated,omitempty"`
}

// Weight is the published metadata for one career component.
type Weight struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description"`
	Sources     []Source `json:"sources"`
}

// SeasonRange bounds the seasons covered by the statistics. Either end
// is null when no game carried a date.
type SeasonRange struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// Coverage summarizes the ranked population.
type Coverage struct {
	Players     int         `json:"players"`
	SeasonRange SeasonRange `json:"seasonRange"`
}

// CareerRow is one player on the career board.
type CareerRow struct {
	PersonID       string                 `json:"personId"`
	Rank           int                    `json:"rank"`
	Name           string                 `json:"name"`
	GoatScore      float64                `json:"goatScore"`
	Tier           string                 `json:"tier"`
	Status         string                 `json:"status"`
	CareerSpan     string                 `json:"careerSpan"`
	PrimeWindow    *string                `json:"primeWindow"`
	Delta          float64                `json:"delta"`
	Franchises     []string               `json:"franchises"`
	Resume         string                 `json:"resume"`
	GoatComponents model.CareerComponents `json:"goatComponents"`
	WinPct         float64                `json:"winPct"`
	PlayoffWinPct  float64                `json:"playoffWinPct"`
	FinalsMVPs     int                    `json:"finalsMVPs"`
}

// CareerDocument is the published career ranking.
type CareerDocument struct {
	GeneratedAt      string            `json:"generatedAt"`
	Weights          []Weight          `json:"weights"`
	Coverage         Coverage          `json:"coverage"`
	SourceTimestamps map[string]string `json:"sourceTimestamps,omitempty"`
	Players          []CareerRow       `json:"players"`
}

// RecentRow is one player on the recent-form board.
type RecentRow struct {
	Rank       int      `json:"rank"`
	PersonID   string   `json:"personId"`
	Name       string   `json:"name"`
	Team       string   `json:"team"`
	Franchise  string   `json:"franchise"`
	Score      float64  `json:"score"`
	Blurb      string   `json:"blurb"`
	Points     int      `json:"points"`
	Assists    int      `json:"assists"`
	Rebounds   int      `json:"rebounds"`
	Blocks     int      `json:"blocks"`
	Tier       string   `json:"tier,omitempty"`
	Resume     string   `json:"resume,omitempty"`
	Franchises []string `json:"franchises,omitempty"`
	Status     string   `json:"status,omitempty"`
}

// RecentDocument is the published recent-form ranking.
type RecentDocument struct {
	GeneratedAt string      `json:"generatedAt"`
	Window      string      `json:"window"`
	Metric      string      `json:"metric"`
	Players     []RecentRow `json:"players"`
}
