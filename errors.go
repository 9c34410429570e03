package theta

import "errors"

var (
	ErrMismatched   = errors.New("series length mismatch")
	ErrMixedSeries  = errors.New("mixed series")
	ErrUnknownLabel = errors.New("unknown label")
	ErrBadGeometry  = errors.New("invalid geometry")
)
