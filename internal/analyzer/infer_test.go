package analyzer

import (
	"errors"
	"testing"

	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/typesystem"
)

var (
	tInt  = typesystem.TInt{}
	tBool = typesystem.TBool{}
)

func intLit(v int64) ast.Expr { return &ast.IntLit{Value: v} }

func boolLit(v bool) ast.Expr { return &ast.BoolLit{Value: v} }

func varRef(n string) ast.Expr { return &ast.Var{Name: n} }

func op(o ast.Op, args ...ast.Expr) ast.Expr { return &ast.Primop{Op: o, Args: args} }

func call(fn ast.Expr, args ...ast.Expr) ast.Expr { return &ast.Apply{Fn: fn, Args: args} }

func arrow(result typesystem.Type, params ...typesystem.Type) typesystem.TArrow {
	return typesystem.TArrow{Params: params, Result: result}
}

func TestContextShadowing(t *testing.T) {
	ctx := Empty.Extend("x", tInt).Extend("x", tBool)
	got, ok := ctx.Lookup("x")
	if !ok || !got.Equal(tBool) {
		t.Errorf("Lookup should find the most recent binding, got %v", got)
	}
	if _, ok := ctx.Lookup("y"); ok {
		t.Errorf("Lookup found a binding for an absent name")
	}

	// Extending never disturbs the original context.
	if got, _ := Empty.Extend("x", tInt).Lookup("x"); !got.Equal(tInt) {
		t.Errorf("base context changed by extension")
	}
}

func TestInferTypes(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		expr ast.Expr
		want typesystem.Type
	}{
		{
			name: "integer literal",
			expr: intLit(3),
			want: tInt,
		},
		{
			name: "boolean literal",
			expr: boolLit(true),
			want: tBool,
		},
		{
			name: "variable from context",
			ctx:  Empty.Extend("x", tBool),
			expr: varRef("x"),
			want: tBool,
		},
		{
			name: "comparison produces a boolean",
			expr: op(ast.OpLessThan, intLit(1), intLit(2)),
			want: tBool,
		},
		{
			name: "conditional joins equal branches",
			expr: &ast.If{Cond: boolLit(true), Then: intLit(1), Else: intLit(2)},
			want: tInt,
		},
		{
			name: "let extends the context",
			expr: &ast.Let{Name: "x", Bound: intLit(1), Body: op(ast.OpPlus, varRef("x"), intLit(5))},
			want: tInt,
		},
		{
			name: "fn type lists parameters in declared order",
			expr: &ast.Fn{
				Params: []ast.Param{{Name: "x", Type: tInt}, {Name: "b", Type: tBool}},
				Body:   varRef("x"),
			},
			want: arrow(tInt, tInt, tBool),
		},
		{
			name: "nullary fn",
			expr: &ast.Fn{Params: nil, Body: intLit(42)},
			want: arrow(tInt),
		},
		{
			name: "rec checks body against its annotation",
			expr: &ast.Rec{
				Name: "f",
				Type: arrow(tInt, tInt),
				Body: &ast.Fn{
					Params: []ast.Param{{Name: "x", Type: tInt}},
					Body:   call(varRef("f"), varRef("x")),
				},
			},
			want: arrow(tInt, tInt),
		},
		{
			name: "application yields the result type",
			expr: call(
				&ast.Fn{Params: []ast.Param{{Name: "x", Type: tInt}}, Body: op(ast.OpEqual, varRef("x"), intLit(0))},
				intLit(3),
			),
			want: tBool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.ctx, tt.expr)
			if err != nil {
				t.Fatalf("Infer returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Infer = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInferErrors(t *testing.T) {
	twoParamFn := &ast.Fn{
		Params: []ast.Param{{Name: "x", Type: tInt}, {Name: "y", Type: tInt}},
		Body:   op(ast.OpPlus, varRef("x"), varRef("y")),
	}

	tests := []struct {
		name  string
		expr  ast.Expr
		check func(t *testing.T, err error)
	}{
		{
			name: "unbound variable",
			expr: varRef("ghost"),
			check: func(t *testing.T, err error) {
				var unbound *UnboundVariableError
				if !errors.As(err, &unbound) {
					t.Fatalf("want UnboundVariableError, got %v", err)
				}
				if unbound.Name != "ghost" {
					t.Errorf("error carries %q, want ghost", unbound.Name)
				}
			},
		},
		{
			name: "primop operand type mismatch",
			expr: op(ast.OpPlus, boolLit(true), intLit(1)),
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("want TypeMismatchError, got %v", err)
				}
				if !mismatch.Expected.Equal(tInt) || !mismatch.Actual.Equal(tBool) {
					t.Errorf("mismatch = expected %s actual %s", mismatch.Expected, mismatch.Actual)
				}
			},
		},
		{
			name: "primop operand count",
			expr: op(ast.OpNegate, intLit(1), intLit(2)),
			check: func(t *testing.T, err error) {
				var arity *ArityMismatchError
				if !errors.As(err, &arity) {
					t.Fatalf("want ArityMismatchError, got %v", err)
				}
			},
		},
		{
			name: "non-boolean condition",
			expr: &ast.If{Cond: intLit(1), Then: intLit(1), Else: intLit(2)},
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("want TypeMismatchError, got %v", err)
				}
				if !mismatch.Expected.Equal(tBool) {
					t.Errorf("expected type should be Bool, got %s", mismatch.Expected)
				}
			},
		},
		{
			name: "branches disagree",
			expr: &ast.If{Cond: boolLit(true), Then: intLit(1), Else: boolLit(false)},
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("want TypeMismatchError, got %v", err)
				}
			},
		},
		{
			name: "rec body type differs from annotation",
			expr: &ast.Rec{Name: "f", Type: tInt, Body: boolLit(true)},
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("want TypeMismatchError, got %v", err)
				}
				if !mismatch.Expected.Equal(tInt) || !mismatch.Actual.Equal(tBool) {
					t.Errorf("mismatch = expected %s actual %s", mismatch.Expected, mismatch.Actual)
				}
			},
		},
		{
			name: "application argument count",
			expr: call(twoParamFn, intLit(3)),
			check: func(t *testing.T, err error) {
				var arity *ArityMismatchError
				if !errors.As(err, &arity) {
					t.Fatalf("want ArityMismatchError, got %v", err)
				}
				if arity.Want != 2 || arity.Got != 1 {
					t.Errorf("arity error = want %d got %d", arity.Want, arity.Got)
				}
			},
		},
		{
			name: "application argument type",
			expr: call(twoParamFn, intLit(3), boolLit(true)),
			check: func(t *testing.T, err error) {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("want TypeMismatchError, got %v", err)
				}
			},
		},
		{
			name: "applying a non-function",
			expr: call(intLit(3), intLit(1)),
			check: func(t *testing.T, err error) {
				var apply *ApplyNonArrowError
				if !errors.As(err, &apply) {
					t.Fatalf("want ApplyNonArrowError, got %v", err)
				}
				if !apply.Actual.Equal(tInt) {
					t.Errorf("error carries %s, want Int", apply.Actual)
				}
			},
		},
		{
			name: "duplicate parameter names",
			expr: &ast.Fn{
				Params: []ast.Param{{Name: "x", Type: tInt}, {Name: "x", Type: tInt}},
				Body:   varRef("x"),
			},
			check: func(t *testing.T, err error) {
				var dup *DuplicateParamError
				if !errors.As(err, &dup) {
					t.Fatalf("want DuplicateParamError, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Infer(Empty, tt.expr)
			if err == nil {
				t.Fatalf("Infer succeeded, want error")
			}
			tt.check(t, err)
		})
	}
}
