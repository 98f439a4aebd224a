package statespace

import "errors"

// ErrMaxStatesExceeded is returned when forward closure discovers more
// states than the configured bound, before the space is usable.
var ErrMaxStatesExceeded = errors.New("statespace: max_states exceeded during forward closure")

// ErrNoSuchSample is returned by the sampling operations when the requested
// bucket (all states, a given goal distance, or dead ends) is empty.
var ErrNoSuchSample = errors.New("statespace: no state available for requested sample")
