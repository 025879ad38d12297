package model

import "errors"

// Sentinel kinds for match record validation.
var (
	ErrInvalidOutcome = errors.New("invalid outcome")
	ErrMissingTeam    = errors.New("missing team name")
)
