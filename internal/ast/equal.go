package ast

// Equal reports structural equality of two expressions. Bound names are
// compared literally, not up to alpha-equivalence; callers that compare
// substitution output reset the fresh-name counter first to keep generated
// names stable.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *IntLit:
		b, ok := b.(*IntLit)
		return ok && a.Value == b.Value
	case *BoolLit:
		b, ok := b.(*BoolLit)
		return ok && a.Value == b.Value
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *If:
		b, ok := b.(*If)
		return ok && Equal(a.Cond, b.Cond) && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *Primop:
		b, ok := b.(*Primop)
		return ok && a.Op == b.Op && equalList(a.Args, b.Args)
	case *Fn:
		b, ok := b.(*Fn)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i, p := range a.Params {
			if p.Name != b.Params[i].Name || !p.Type.Equal(b.Params[i].Type) {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	case *Rec:
		b, ok := b.(*Rec)
		return ok && a.Name == b.Name && a.Type.Equal(b.Type) && Equal(a.Body, b.Body)
	case *Let:
		b, ok := b.(*Let)
		return ok && a.Name == b.Name && Equal(a.Bound, b.Bound) && Equal(a.Body, b.Body)
	case *Apply:
		b, ok := b.(*Apply)
		return ok && Equal(a.Fn, b.Fn) && equalList(a.Args, b.Args)
	default:
		return false
	}
}

func equalList(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
