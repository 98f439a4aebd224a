package rank

import "errors"

// ErrOutOfRange indicates a rank or id fell outside its valid interval —
// a debug invariant violation, not a recoverable condition.
var ErrOutOfRange = errors.New("rank: index out of range")

// ErrArgumentOutOfDomain indicates an atom argument's object id is not a
// valid index into the problem's object list, so it cannot be ranked.
var ErrArgumentOutOfDomain = errors.New("rank: argument object outside problem")
