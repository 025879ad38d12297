package service

import "errors"

// Sentinel kinds for simulation errors.
var (
	// ErrUnknownEntity means a record names a team outside the canonical set.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrInvalidOutcome means a record's win indicator is not 0 or 1.
	ErrInvalidOutcome = errors.New("invalid outcome")
	// ErrSelfMatch means both sides of a record resolve to the same team.
	ErrSelfMatch = errors.New("team cannot play itself")
)
