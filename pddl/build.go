package pddl

import (
	"strconv"
	"strings"

	"github.com/gopherplan/strips/formalism"
)

// supportedRequirements is the fixed set of PDDL requirement flags this
// parser accepts; anything else is a SemanticError naming the flag rather
// than a silently ignored requirement.
var supportedRequirements = map[string]bool{
	":strips":                 true,
	":typing":                 true,
	":negative-preconditions": true,
	":action-costs":           true,
	":conditional-effects":    true,
	":equality":               true,
}

func parseRequirements(n *Node) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, item := range n.Tail() {
		if !item.IsAtom() {
			return nil, semErr(item, "requirement flag must be an atom")
		}
		flag := strings.ToLower(item.Atom)
		if !supportedRequirements[flag] {
			return nil, semErr(item, "unsupported requirement %q", item.Atom)
		}
		out[flag] = true
	}
	return out, nil
}

func objectType(d *formalism.Domain) *formalism.Type {
	t, err := d.LookupType("object")
	if err == nil {
		return t
	}
	t, _ = d.InternType("object", nil)
	return t
}

// resolveFunc resolves one atom argument node — a "?"-prefixed schema
// parameter reference or a bare constant name — to its interned Object.
type resolveFunc func(n *Node) (*formalism.Object, error)

// slot is one parsed (name, type) pair out of a PDDL typed list, e.g. one
// entry of "?x ?y - block ?z - location".
type slot struct {
	name string
	typ  *formalism.Type
}

// parseTypedList walks a flat sequence of name atoms interleaved with
// "- typename" markers, grouping each run of untyped names under the
// following type (defaulting to "object" for a trailing untyped run). A
// base type named by "- typename" that has not yet been interned is
// created lazily as a direct subtype of "object" — the common PDDL
// convention of introducing a supertype purely by using it as one.
func parseTypedList(items []*Node, d *formalism.Domain) ([]slot, error) {
	var out []slot
	var pending []*Node

	flush := func(typ *formalism.Type) {
		for _, nameNode := range pending {
			out = append(out, slot{name: nameNode.Atom, typ: typ})
		}
		pending = nil
	}

	i := 0
	for i < len(items) {
		item := items[i]
		if item.eqFold("-") {
			return nil, semErr(item, "dangling '-' with no preceding names")
		}
		if i+1 < len(items) && items[i+1].eqFold("-") {
			if i+2 >= len(items) {
				return nil, semErr(items[i+1], "'-' not followed by a type name")
			}
			typeNode := items[i+2]
			if !typeNode.IsAtom() {
				return nil, semErr(typeNode, "expected type name after '-'")
			}
			pending = append(pending, item)
			typ, err := d.LookupType(typeNode.Atom)
			if err != nil {
				typ, err = d.InternType(typeNode.Atom, objectType(d))
				if err != nil {
					return nil, semErr(typeNode, "%s", err)
				}
			}
			flush(typ)
			i += 3
			continue
		}
		if !item.IsAtom() {
			return nil, semErr(item, "expected a name in typed list")
		}
		pending = append(pending, item)
		i++
	}
	flush(objectType(d))
	return out, nil
}

// parseNumber parses a PDDL numeric literal (integers and decimals; no
// exponent form appears in the supported subset).
func parseNumber(n *Node) (float64, error) {
	if !n.IsAtom() {
		return 0, semErr(n, "expected a number")
	}
	v, err := strconv.ParseFloat(n.Atom, 64)
	if err != nil {
		return 0, semErr(n, "invalid number %q", n.Atom)
	}
	return v, nil
}
