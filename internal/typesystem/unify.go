package typesystem

import "errors"

// Unify attempts to make t1 and t2 structurally equal by binding unbound
// variables in place. On success it returns nil; the bindings are the only
// side effect. There is no backtracking: bindings made before a conflict was
// detected stay in place even when Unify returns an error, so callers that
// need speculative unification must snapshot variable cells themselves.
func Unify(t1, t2 UType) error {
	switch a := t1.(type) {
	case UInt:
		switch b := t2.(type) {
		case UInt:
			return nil
		case *UVar:
			return unifyVar(b, t1)
		default:
			return NewMismatchError(t1, t2)
		}
	case UBool:
		switch b := t2.(type) {
		case UBool:
			return nil
		case *UVar:
			return unifyVar(b, t1)
		default:
			return NewMismatchError(t1, t2)
		}
	case UArrow:
		switch b := t2.(type) {
		case UArrow:
			// A nested conflict is reported against the two original
			// arrows, not the offending subterms.
			if err := Unify(a.Param, b.Param); err != nil {
				return arrowError(err, t1, t2)
			}
			if err := Unify(a.Result, b.Result); err != nil {
				return arrowError(err, t1, t2)
			}
			return nil
		case *UVar:
			return unifyVar(b, t1)
		default:
			return NewMismatchError(t1, t2)
		}
	case *UVar:
		return unifyVar(a, t2)
	default:
		return NewMismatchError(t1, t2)
	}
}

func arrowError(err error, t1, t2 UType) error {
	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		return NewMismatchError(t1, t2)
	}
	return err
}

// unifyVar unifies the variable a with the type t, fully dereferencing both
// sides before committing a binding.
func unifyVar(a *UVar, t UType) error {
	if a.Ref != nil {
		return Unify(a.Ref, t)
	}
	if b, ok := t.(*UVar); ok {
		if a == b {
			return nil
		}
		if b.Ref != nil {
			return unifyVar(a, b.Ref)
		}
		a.Ref = t
		return nil
	}
	if occursIn(a, t) {
		return NewOccursError(a, t)
	}
	a.Ref = t
	return nil
}

// occursIn reports whether the variable a appears inside t, following
// bindings. Binding a to such a t would build an infinite type.
func occursIn(a *UVar, t UType) bool {
	switch b := t.(type) {
	case *UVar:
		if a == b {
			return true
		}
		if b.Ref != nil {
			return occursIn(a, b.Ref)
		}
		return false
	case UArrow:
		return occursIn(a, b.Param) || occursIn(a, b.Result)
	default:
		return false
	}
}
