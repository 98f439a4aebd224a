package grounded

import "errors"

// ErrDeadlineExceeded is returned when construction's exhaustive grounding
// pass aborts before finishing.
var ErrDeadlineExceeded = errors.New("grounded: deadline exceeded before exhaustive grounding completed")
