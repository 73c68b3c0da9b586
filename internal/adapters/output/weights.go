package output

import "github.com/okian/goatboard/internal/domain/model"

const (
	sourceGameLogs  = "Box-score game logs (PlayerStatistics.csv)"
	sourceRegistry  = "Players.csv registry"
	sourceTeams     = "TeamHistories.csv"
	sourceBaseline  = "Baseline component feed (goat_index.json)"
	sourceMVPLedger = "Finals MVP ledger (finals_mvp.json)"
)

// Weights returns the component metadata in career key order. The
// baseline timestamp, when known, is stamped on every baseline source.
func Weights(baselineGeneratedAt string) []Weight {
	baseline := func(contribution string, fields ...string) Source {
		return Source{
			Name:         sourceBaseline,
			Contribution: contribution,
			Fields:       fields,
			LastUpdated:  baselineGeneratedAt,
		}
	}

	return []Weight{
		{
			Key:         model.ComponentImpact,
			Label:       "Prime Impact & Possession Value",
			Weight:      0.32,
			Description: "Possession-weighted scoring, playmaking, and stocks blended with an opponent-adjusted impact baseline.",
			Sources: []Source{
				{
					Name:         sourceGameLogs,
					Contribution: "Points, assists, rebounds, steals, blocks, and minutes per game.",
					Fields:       []string{"points", "assists", "reboundsTotal", "steals", "blocks", "numMinutes"},
				},
				baseline("Opponent-adjusted impact baseline used for cross-era calibration.", "goatComponents.impact"),
			},
		},
		{
			Key:         model.ComponentStage,
			Label:       "Stage Dominance",
			Weight:      0.26,
			Description: "Championship equity from playoff wins, Finals performance, and baseline postseason deltas.",
			Sources: []Source{
				{
					Name:         sourceGameLogs,
					Contribution: "Playoff wins, Finals games, and close-out opportunities.",
					Fields:       []string{"gameType", "gameLabel", "win"},
				},
				baseline("Stage dominance priors and twelve-month movement flags.", "goatComponents.stage", "delta"),
				{
					Name:         sourceMVPLedger,
					Contribution: "Finals MVP counts that amplify stage equity.",
					Fields:       []string{"player", "year"},
				},
			},
		},
		{
			Key:         model.ComponentLongevity,
			Label:       "Longevity & Availability",
			Weight:      0.2,
			Description: "Career minutes, appearances, and durability context.",
			Sources: []Source{
				{
					Name:         sourceGameLogs,
					Contribution: "Total minutes, games played, and availability counts.",
					Fields:       []string{"numMinutes", "personId"},
				},
				{
					Name:         sourceRegistry,
					Contribution: "Draft years to anchor entry seasons when game logs are incomplete.",
					Fields:       []string{"draftYear"},
				},
				baseline("Longevity coefficients keeping modern and classic careers on one scale.", "goatComponents.longevity"),
			},
		},
		{
			Key:         model.ComponentVersatility,
			Label:       "Versatility & Scalability",
			Weight:      0.12,
			Description: "Positional flexibility, on-ball creation, and multi-team adaptability.",
			Sources: []Source{
				{
					Name:         sourceGameLogs,
					Contribution: "Assist, rebound, steal, and block rates per game.",
					Fields:       []string{"assists", "reboundsTotal", "steals", "blocks"},
				},
				{
					Name:         sourceRegistry,
					Contribution: "Declared guard/forward/center flags for positional counts.",
					Fields:       []string{"guard", "forward", "center"},
				},
				{
					Name:         sourceTeams,
					Contribution: "Franchise abbreviations that normalize team switches across eras.",
					Fields:       []string{"teamCity", "teamName", "teamAbbrev"},
				},
				baseline("Versatility anchors derived from historical lineup data.", "goatComponents.versatility"),
			},
		},
		{
			Key:         model.ComponentCulture,
			Label:       "Cultural Capital",
			Weight:      0.1,
			Description: "Leadership credit rooted in championships, global reach, and cultural resonance.",
			Sources: []Source{
				{
					Name:         sourceGameLogs,
					Contribution: "Win totals and postseason success that underpin leadership value.",
					Fields:       []string{"win", "gameType"},
				},
				{
					Name:         sourceRegistry,
					Contribution: "Country of origin and draft position for international and pedigree bonuses.",
					Fields:       []string{"country", "draftNumber"},
				},
				baseline("Cultural capital baseline and story-driven adjustments.", "goatComponents.culture"),
				{
					Name:         sourceMVPLedger,
					Contribution: "Finals MVP hardware that elevates legacy credit.",
					Fields:       []string{"player", "year"},
				},
			},
		},
	}
}
