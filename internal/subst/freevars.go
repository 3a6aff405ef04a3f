// Package subst implements free-variable analysis and capture-avoiding
// substitution over expressions. It is the one place binders are ever
// renamed; the evaluator builds on it to eliminate every binding construct.
package subst

import (
	"github.com/minml-lang/minml/internal/ast"
)

// FreeVars returns the set of names occurring free in e. Each name appears at
// most once; the order is not significant.
func FreeVars(e ast.Expr) []string {
	switch e := e.(type) {
	case *ast.IntLit, *ast.BoolLit:
		return nil
	case *ast.Var:
		return []string{e.Name}
	case *ast.If:
		return union(FreeVars(e.Cond), union(FreeVars(e.Then), FreeVars(e.Else)))
	case *ast.Primop:
		var acc []string
		for _, arg := range e.Args {
			acc = union(FreeVars(arg), acc)
		}
		return acc
	case *ast.Fn:
		body := FreeVars(e.Body)
		for _, p := range e.Params {
			body = remove(p.Name, body)
		}
		return body
	case *ast.Rec:
		return remove(e.Name, FreeVars(e.Body))
	case *ast.Let:
		return union(FreeVars(e.Bound), remove(e.Name, FreeVars(e.Body)))
	case *ast.Apply:
		acc := FreeVars(e.Fn)
		for _, arg := range e.Args {
			acc = union(FreeVars(arg), acc)
		}
		return acc
	default:
		return nil
	}
}

// union prepends the elements of a not already present in b.
func union(a, b []string) []string {
	out := b
	for i := len(a) - 1; i >= 0; i-- {
		if !contains(out, a[i]) {
			out = append([]string{a[i]}, out...)
		}
	}
	return out
}

func remove(name string, set []string) []string {
	var out []string
	for _, n := range set {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func contains(set []string, name string) bool {
	for _, n := range set {
		if n == name {
			return true
		}
	}
	return false
}
