package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrObserveFailed  = errors.New("metrics observe failed")
	ErrNoTextfilePath = errors.New("metrics textfile path is empty")
)
