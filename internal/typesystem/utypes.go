package typesystem

import "fmt"

// UType is the representation the unifier works on. Unlike Type it is open:
// it may contain unification variables, and arrows are curried (one parameter,
// one result). The two representations are deliberately separate — the checker
// never sees a variable, and the unifier never sees an n-ary arrow.
type UType interface {
	String() string
	utypeNode()
}

// UInt is the unifier-side integer type.
type UInt struct{}

func (UInt) utypeNode()     {}
func (UInt) String() string { return "Int" }

// UBool is the unifier-side boolean type.
type UBool struct{}

func (UBool) utypeNode()     {}
func (UBool) String() string { return "Bool" }

// UArrow is a curried function type.
type UArrow struct {
	Param  UType
	Result UType
}

func (UArrow) utypeNode() {}

func (t UArrow) String() string {
	if _, ok := t.Param.(UArrow); ok {
		return fmt.Sprintf("(%s) -> %s", t.Param, t.Result)
	}
	return fmt.Sprintf("%s -> %s", t.Param, t.Result)
}

// UVar is a unification variable: a mutable cell that is either unbound
// (Ref == nil) or bound to another UType. Variables are always handled through
// a *UVar pointer; two variables are the same variable exactly when the
// pointers are equal. Structural content is never used for identity.
type UVar struct {
	Name string
	Ref  UType
}

func (*UVar) utypeNode() {}

func (v *UVar) String() string {
	if v.Ref != nil {
		return v.Ref.String()
	}
	return "'" + v.Name
}

// NewUVar allocates a fresh unbound variable cell.
func NewUVar(name string) *UVar {
	return &UVar{Name: name}
}

// Bound reports whether the variable has been bound by unification.
func (v *UVar) Bound() bool { return v.Ref != nil }

// Resolve follows variable bindings until it reaches an unbound variable or a
// non-variable type. It never mutates.
func Resolve(t UType) UType {
	for {
		v, ok := t.(*UVar)
		if !ok || v.Ref == nil {
			return t
		}
		t = v.Ref
	}
}
