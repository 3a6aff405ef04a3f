package analyzer

import (
	"github.com/minml-lang/minml/internal/typesystem"
)

// Context is an immutable ordered association from names to types. Lookup
// finds the most recently added binding, so re-binding a name shadows the
// older entry. Extend never mutates the receiver; inference at one subtree
// cannot disturb the context seen at a sibling.
type Context struct {
	name string
	typ  typesystem.Type
	next *Context
}

// Empty is the context with no bindings.
var Empty *Context

// Extend returns a new context with (name, typ) in front of c.
func (c *Context) Extend(name string, typ typesystem.Type) *Context {
	return &Context{name: name, typ: typ, next: c}
}

// Lookup returns the type most recently bound to name.
func (c *Context) Lookup(name string) (typesystem.Type, bool) {
	for cur := c; cur != nil; cur = cur.next {
		if cur.name == name {
			return cur.typ, true
		}
	}
	return nil, false
}
