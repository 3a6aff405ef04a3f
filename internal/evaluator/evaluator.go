// Package evaluator reduces closed expressions to values. It is big-step and
// call-by-value, and it threads no runtime environment: every binding
// construct is eliminated by substituting the bound value into the body, so
// by the time a body is evaluated its variables are gone.
package evaluator

import (
	"fmt"

	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/subst"
)

// IsValue reports whether e is already a value: an integer literal, a
// boolean literal or a function literal.
func IsValue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.IntLit, *ast.BoolLit, *ast.Fn:
		return true
	}
	return false
}

// Eval reduces e to a value or fails with one of the runtime errors in
// error.go. Evaluation is deterministic; the same expression always reduces
// to a structurally identical value. A diverging recursive binding diverges
// Eval too — bounding evaluation is the caller's concern.
func Eval(e ast.Expr) (ast.Expr, error) {
	switch e := e.(type) {
	case *ast.IntLit, *ast.BoolLit, *ast.Fn:
		return e, nil

	case *ast.Var:
		return nil, NewFreeVariableError(e.Name)

	case *ast.Primop:
		args := make([]ast.Expr, len(e.Args))
		for i, arg := range e.Args {
			v, err := Eval(arg)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return applyPrimop(e.Op, args)

	case *ast.If:
		cond, err := Eval(e.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*ast.BoolLit)
		if !ok {
			return nil, NewNonBoolCondError(cond)
		}
		if b.Value {
			return Eval(e.Then)
		}
		return Eval(e.Else)

	case *ast.Let:
		bound, err := Eval(e.Bound)
		if err != nil {
			return nil, err
		}
		return Eval(subst.Apply(subst.Substitution{Repl: bound, Name: e.Name}, e.Body))

	case *ast.Rec:
		// Unfold one level: the recursive name stands for the whole
		// unevaluated construct, so each recursive occurrence unfolds a
		// fresh copy on demand.
		return Eval(subst.Apply(subst.Substitution{Repl: e, Name: e.Name}, e.Body))

	case *ast.Apply:
		fnVal, err := Eval(e.Fn)
		if err != nil {
			return nil, err
		}
		fn, ok := fnVal.(*ast.Fn)
		if !ok {
			return nil, NewApplyNonFunctionError(fnVal)
		}
		args := make([]ast.Expr, len(e.Args))
		for i, arg := range e.Args {
			v, err := Eval(arg)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		if len(args) != len(fn.Params) {
			return nil, NewArityMismatchError(len(fn.Params), len(args))
		}
		subs := make([]subst.Substitution, len(args))
		for i, v := range args {
			subs[i] = subst.Substitution{Repl: v, Name: fn.Params[i].Name}
		}
		return Eval(subst.ApplyAll(subs, fn.Body))

	default:
		panic(fmt.Sprintf("unhandled expression %T", e))
	}
}

func applyPrimop(op ast.Op, args []ast.Expr) (ast.Expr, error) {
	switch op {
	case ast.OpNegate:
		if len(args) == 1 {
			if n, ok := args[0].(*ast.IntLit); ok {
				return &ast.IntLit{Value: -n.Value}, nil
			}
		}
	default:
		if len(args) == 2 {
			a, aok := args[0].(*ast.IntLit)
			b, bok := args[1].(*ast.IntLit)
			if aok && bok {
				switch op {
				case ast.OpEqual:
					return &ast.BoolLit{Value: a.Value == b.Value}, nil
				case ast.OpLessThan:
					return &ast.BoolLit{Value: a.Value < b.Value}, nil
				case ast.OpPlus:
					return &ast.IntLit{Value: a.Value + b.Value}, nil
				case ast.OpMinus:
					return &ast.IntLit{Value: a.Value - b.Value}, nil
				case ast.OpTimes:
					return &ast.IntLit{Value: a.Value * b.Value}, nil
				}
			}
		}
	}
	return nil, NewBadPrimopArgsError(op, args)
}
