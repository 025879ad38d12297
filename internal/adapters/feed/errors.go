package feed

import "errors"

// Sentinel kinds for feed errors.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
)
