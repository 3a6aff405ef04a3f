package subst

import (
	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/names"
)

// Substitution maps one name to a replacement expression: "Repl for Name".
type Substitution struct {
	Repl ast.Expr
	Name string
}

// Apply replaces every free occurrence of s.Name in e with s.Repl, renaming
// binders in e whose scope would otherwise capture a free variable of s.Repl.
// Substitution is total: it never fails on a well-formed expression.
func Apply(s Substitution, e ast.Expr) ast.Expr {
	return apply(s, FreeVars(s.Repl), e)
}

// ApplyAll applies the substitutions left to right, each to the result of the
// previous one.
func ApplyAll(subs []Substitution, e ast.Expr) ast.Expr {
	for _, s := range subs {
		e = Apply(s, e)
	}
	return e
}

func apply(s Substitution, free []string, e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case *ast.IntLit, *ast.BoolLit:
		return e

	case *ast.Var:
		if e.Name == s.Name {
			return s.Repl
		}
		return e

	case *ast.If:
		return &ast.If{
			Cond: apply(s, free, e.Cond),
			Then: apply(s, free, e.Then),
			Else: apply(s, free, e.Else),
		}

	case *ast.Primop:
		return &ast.Primop{Op: e.Op, Args: applyList(s, free, e.Args)}

	case *ast.Apply:
		return &ast.Apply{
			Fn:   apply(s, free, e.Fn),
			Args: applyList(s, free, e.Args),
		}

	case *ast.Let:
		bound := apply(s, free, e.Bound)
		// The let-bound name shadows s.Name inside the body.
		if e.Name == s.Name {
			return &ast.Let{Name: e.Name, Bound: bound, Body: e.Body}
		}
		name, body := e.Name, e.Body
		if contains(free, name) {
			name, body = rename(name, body)
		}
		return &ast.Let{Name: name, Bound: bound, Body: apply(s, free, body)}

	case *ast.Rec:
		// The recursive name shadows s.Name for the whole body.
		if e.Name == s.Name {
			return e
		}
		name, body := e.Name, e.Body
		if contains(free, name) {
			name, body = rename(name, body)
		}
		return &ast.Rec{Name: name, Type: e.Type, Body: apply(s, free, body)}

	case *ast.Fn:
		for _, p := range e.Params {
			if p.Name == s.Name {
				return e
			}
		}
		params := e.Params
		body := e.Body
		if anyAtRisk(params, free) {
			params = append([]ast.Param(nil), e.Params...)
			for i, p := range params {
				if !contains(free, p.Name) {
					continue
				}
				fresh := names.Fresh(p.Name)
				body = Apply(Substitution{Repl: &ast.Var{Name: fresh}, Name: p.Name}, body)
				params[i] = ast.Param{Name: fresh, Type: p.Type}
			}
		}
		return &ast.Fn{Params: params, Body: apply(s, free, body)}

	default:
		return e
	}
}

func applyList(s Substitution, free []string, es []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, len(es))
	for i, e := range es {
		out[i] = apply(s, free, e)
	}
	return out
}

func anyAtRisk(params []ast.Param, free []string) bool {
	for _, p := range params {
		if contains(free, p.Name) {
			return true
		}
	}
	return false
}

// rename replaces the binder name with a fresh one throughout body.
func rename(name string, body ast.Expr) (string, ast.Expr) {
	fresh := names.Fresh(name)
	return fresh, Apply(Substitution{Repl: &ast.Var{Name: fresh}, Name: name}, body)
}
