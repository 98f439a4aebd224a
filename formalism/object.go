package formalism

import "strings"

// Object is a typed constant, or — when its Name begins with "?" — a free
// schema variable. Identity within a Domain+Problem is ID.
type Object struct {
	ID   uint32
	Name string
	Type *Type
}

// IsVariable reports whether this Object denotes a free schema variable
// (its name begins with "?") rather than a problem constant.
func (o *Object) IsVariable() bool {
	return strings.HasPrefix(o.Name, "?")
}

// String returns the object's name.
func (o *Object) String() string {
	if o == nil {
		return "<nil-object>"
	}
	return o.Name
}
