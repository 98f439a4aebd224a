// Package goalmatch finds the state in an explicit state space that is
// closest to a chosen "from" state and satisfies a possibly-lifted goal,
// returning that state's distance from the "from" state.
//
// A ground goal (every argument in every goal literal is a problem
// constant) is checked by direct literal satisfaction against each
// discovered state, cheapest first. A lifted goal (at least one argument is
// a free variable) is checked by building a synthetic, unit-cost action
// schema whose precondition is the goal conjunction and asking the lifted
// successor generator whether it admits any grounding at all in that state.
//
// Matcher caches the distance-sorted state list for the space's initial
// state, since BestMatch against the initial state is the common case; any
// other "from" state recomputes its own sorted list on demand.
package goalmatch
