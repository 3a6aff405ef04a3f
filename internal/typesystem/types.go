package typesystem

import "strings"

// Type is the interface for all types in the explicitly-annotated surface
// language. These types are closed: there are no type variables here, and
// equality is structural. The unifier works on a separate representation
// (see utypes.go) that adds mutable variables.
type Type interface {
	String() string
	Equal(Type) bool
	typeNode()
}

// TInt is the type of integer literals and arithmetic results.
type TInt struct{}

func (TInt) typeNode()         {}
func (TInt) String() string    { return "Int" }
func (TInt) Equal(o Type) bool { _, ok := o.(TInt); return ok }

// TBool is the type of boolean literals, comparisons and conditions.
type TBool struct{}

func (TBool) typeNode()         {}
func (TBool) String() string    { return "Bool" }
func (TBool) Equal(o Type) bool { _, ok := o.(TBool); return ok }

// TArrow is an n-ary function type. Params may be empty for a nullary
// function.
type TArrow struct {
	Params []Type
	Result Type
}

func (TArrow) typeNode() {}

func (t TArrow) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") -> ")
	b.WriteString(t.Result.String())
	return b.String()
}

func (t TArrow) Equal(o Type) bool {
	other, ok := o.(TArrow)
	if !ok {
		return false
	}
	if len(t.Params) != len(other.Params) {
		return false
	}
	for i, p := range t.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	return t.Result.Equal(other.Result)
}
