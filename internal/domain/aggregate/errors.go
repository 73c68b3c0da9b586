package aggregate

import "errors"

// Sentinel errors returned by Aggregator.Add.
var (
	ErrMissingPersonID = errors.New("record has no person id")
	ErrFinalized       = errors.New("aggregator already finalized")
)
