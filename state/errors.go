package state

import "errors"

// ErrNotGround indicates an action's arguments did not fill its schema's
// parameters — Apply returns it rather than operating on such an action
// (IsApplicable does not check this).
var ErrNotGround = errors.New("state: action is not ground")

// ErrMismatchedProblem indicates two States (or a State and an Action) were
// built against different *formalism.Problem values.
var ErrMismatchedProblem = errors.New("state: mismatched problem")
