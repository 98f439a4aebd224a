package goalmatch

import "errors"

// ErrUnknownState is returned when a "from" state was never discovered
// while building the underlying state space.
var ErrUnknownState = errors.New("goalmatch: state not found in state space")

// ErrNoMatch is returned when no discovered state reachable from the "from"
// state satisfies the goal.
var ErrNoMatch = errors.New("goalmatch: no matching state found")
