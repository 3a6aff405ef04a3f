// Package analyzer implements syntax-directed type inference for the
// explicitly-annotated surface language. Exactly one rule applies per
// expression shape; there is no unification, no generalization and no
// guessing of unannotated binders.
package analyzer

import (
	"fmt"

	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/typesystem"
)

// Infer returns the type of e under ctx, or the first type error found.
func Infer(ctx *Context, e ast.Expr) (typesystem.Type, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return typesystem.TInt{}, nil

	case *ast.BoolLit:
		return typesystem.TBool{}, nil

	case *ast.Var:
		t, ok := ctx.Lookup(e.Name)
		if !ok {
			return nil, NewUnboundVariableError(e.Name)
		}
		return t, nil

	case *ast.Primop:
		domain := e.Op.Domain()
		if len(e.Args) != len(domain) {
			return nil, NewArityMismatchError(len(domain), len(e.Args))
		}
		for i, arg := range e.Args {
			t, err := Infer(ctx, arg)
			if err != nil {
				return nil, err
			}
			if !t.Equal(domain[i]) {
				return nil, NewTypeMismatchError(domain[i], t)
			}
		}
		return e.Op.Range(), nil

	case *ast.If:
		cond, err := Infer(ctx, e.Cond)
		if err != nil {
			return nil, err
		}
		if !cond.Equal(typesystem.TBool{}) {
			return nil, NewTypeMismatchError(typesystem.TBool{}, cond)
		}
		thenT, err := Infer(ctx, e.Then)
		if err != nil {
			return nil, err
		}
		elseT, err := Infer(ctx, e.Else)
		if err != nil {
			return nil, err
		}
		if !thenT.Equal(elseT) {
			return nil, NewTypeMismatchError(thenT, elseT)
		}
		return thenT, nil

	case *ast.Let:
		bound, err := Infer(ctx, e.Bound)
		if err != nil {
			return nil, err
		}
		return Infer(ctx.Extend(e.Name, bound), e.Body)

	case *ast.Rec:
		body, err := Infer(ctx.Extend(e.Name, e.Type), e.Body)
		if err != nil {
			return nil, err
		}
		if !body.Equal(e.Type) {
			return nil, NewTypeMismatchError(e.Type, body)
		}
		return e.Type, nil

	case *ast.Fn:
		seen := make(map[string]bool, len(e.Params))
		inner := ctx
		params := make([]typesystem.Type, len(e.Params))
		for i, p := range e.Params {
			if seen[p.Name] {
				return nil, NewDuplicateParamError(p.Name)
			}
			seen[p.Name] = true
			inner = inner.Extend(p.Name, p.Type)
			params[i] = p.Type
		}
		body, err := Infer(inner, e.Body)
		if err != nil {
			return nil, err
		}
		return typesystem.TArrow{Params: params, Result: body}, nil

	case *ast.Apply:
		fnT, err := Infer(ctx, e.Fn)
		if err != nil {
			return nil, err
		}
		arrow, ok := fnT.(typesystem.TArrow)
		if !ok {
			return nil, NewApplyNonArrowError(fnT)
		}
		args := make([]typesystem.Type, len(e.Args))
		for i, arg := range e.Args {
			t, err := Infer(ctx, arg)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		if len(args) != len(arrow.Params) {
			return nil, NewArityMismatchError(len(arrow.Params), len(args))
		}
		for i, t := range args {
			if !t.Equal(arrow.Params[i]) {
				return nil, NewTypeMismatchError(arrow.Params[i], t)
			}
		}
		return arrow.Result, nil

	default:
		panic(fmt.Sprintf("unhandled expression %T", e))
	}
}
