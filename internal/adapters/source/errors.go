package source

import "errors"

// Sentinel errors for input adapters.
var (
	// ErrStatsUnavailable means the primary box-score source cannot be
	// read. No ranking can be produced without it.
	ErrStatsUnavailable = errors.New("box-score statistics unavailable")
	ErrMissingColumn    = errors.New("required column missing")
	ErrEmptyPath        = errors.New("input path is empty")
)
