package service

import "errors"

// Sentinel errors returned by the engine.
var (
	ErrNoRecords = errors.New("no record source")
	ErrAggregate = errors.New("aggregate box scores")
)
