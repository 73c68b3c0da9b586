package repository

import "errors"

// Sentinel kinds for leaderboard and history errors.
var (
	ErrInvalidLimit  = errors.New("invalid leaderboard limit")
	ErrNoRuns        = errors.New("no recorded runs")
	ErrNoHistoryPath = errors.New("history path must not be empty")
)
