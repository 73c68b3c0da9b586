// Package config defines the ranking run configuration and its loader.
//
// Conventions:
// - Defaults live in New(); Load layers file and environment on top.
// - Paths left empty disable the optional input or output they name.
// - Errors returned by Load wrap ErrLoadConfig or ErrInvalidConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// StatsPath points at the box-score CSV (plain or .gz). Required.
	StatsPath string `koanf:"stats_path"`

	// PlayersPath points at the player registry CSV.
	PlayersPath string `koanf:"players_path"`

	// TeamsPath points at the team histories CSV used for abbreviations.
	TeamsPath string `koanf:"teams_path"`

	// ActiveIDsPath lists the player ids eligible for recent-form scoring.
	ActiveIDsPath string `koanf:"active_ids_path"`

	// BaselinePath points at the optional external baseline feed.
	BaselinePath string `koanf:"baseline_path"`

	// FinalsMVPPath points at the optional Finals MVP ledger (JSON or YAML).
	FinalsMVPPath string `koanf:"finals_mvp_path"`

	// OutputDir receives the generated documents.
	OutputDir string `koanf:"output_dir"`

	// CareerOutput and RecentOutput are file names inside OutputDir.
	CareerOutput string `koanf:"career_output"`
	RecentOutput string `koanf:"recent_output"`

	// RecentSeasonStart is the first season-year of the rolling window.
	RecentSeasonStart int `koanf:"recent_season_start"`

	// RecentSeasonSpan is the number of season-years in the window.
	RecentSeasonSpan int `koanf:"recent_season_span"`

	// RecentLimit truncates the recent leaderboard; 0 keeps everyone.
	RecentLimit int `koanf:"recent_limit"`

	// HistoryDB enables the SQLite run history when non-empty.
	HistoryDB string `koanf:"history_db"`

	// MetricsTextfile writes Prometheus metrics after a run when non-empty.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		StatsPath:         "PlayerStatistics.csv",
		PlayersPath:       "Players.csv",
		TeamsPath:         "TeamHistories.csv",
		ActiveIDsPath:     "",
		BaselinePath:      "",
		FinalsMVPPath:     "",
		OutputDir:         "public/data",
		CareerOutput:      "goat_system.json",
		RecentOutput:      "goat_recent.json",
		RecentSeasonStart: 2022,
		RecentSeasonSpan:  3,
		RecentLimit:       0,
	}
}
