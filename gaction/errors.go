package gaction

import "errors"

// ErrNotGround indicates the supplied arguments do not fill the schema's
// parameters one-to-one.
var ErrNotGround = errors.New("gaction: arguments do not fill schema parameters")

// ErrTypeMismatch indicates an argument's type is not a subtype of its
// parameter's type.
var ErrTypeMismatch = errors.New("gaction: argument type mismatch")
