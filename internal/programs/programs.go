// Package programs holds a registry of built-in sample programs constructed
// directly as expression trees. Parsing surface syntax is out of scope for
// this module, so the driver runs these instead of reading source files; the
// same programs double as end-to-end fixtures in tests.
package programs

import (
	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/typesystem"
)

// Program is one runnable sample: an expression with its expected type and
// expected value.
type Program struct {
	Name string
	Expr ast.Expr
	Type typesystem.Type
	Want ast.Expr
}

var (
	tInt  = typesystem.TInt{}
	tBool = typesystem.TBool{}
)

func intArrow() typesystem.TArrow {
	return typesystem.TArrow{Params: []typesystem.Type{tInt}, Result: tInt}
}

// recIntFn builds rec (name : (Int) -> Int) => fn (param : Int) => body.
func recIntFn(name, param string, body ast.Expr) ast.Expr {
	return &ast.Rec{
		Name: name,
		Type: intArrow(),
		Body: &ast.Fn{
			Params: []ast.Param{{Name: param, Type: tInt}},
			Body:   body,
		},
	}
}

func i(v int64) ast.Expr { return &ast.IntLit{Value: v} }

func v(name string) ast.Expr { return &ast.Var{Name: name} }

func op(o ast.Op, args ...ast.Expr) ast.Expr { return &ast.Primop{Op: o, Args: args} }

func call(fn ast.Expr, args ...ast.Expr) ast.Expr { return &ast.Apply{Fn: fn, Args: args} }

// all is ordered; the driver runs programs in this order.
var all = []Program{
	{
		// let x = 1 in x + 5 end
		Name: "arith",
		Expr: &ast.Let{Name: "x", Bound: i(1), Body: op(ast.OpPlus, v("x"), i(5))},
		Type: tInt,
		Want: i(6),
	},
	{
		// let x = 1 in let x = x + 1 in x * 3 end end
		Name: "shadowing",
		Expr: &ast.Let{
			Name:  "x",
			Bound: i(1),
			Body: &ast.Let{
				Name:  "x",
				Bound: op(ast.OpPlus, v("x"), i(1)),
				Body:  op(ast.OpTimes, v("x"), i(3)),
			},
		},
		Type: tInt,
		Want: i(6),
	},
	{
		// rec (f : (Int) -> Int) => fn (x : Int) =>
		//   if x = 0 then 1 else x * f(x - 1), applied to 5
		Name: "factorial",
		Expr: call(
			recIntFn("f", "x", &ast.If{
				Cond: op(ast.OpEqual, v("x"), i(0)),
				Then: i(1),
				Else: op(ast.OpTimes, v("x"), call(v("f"), op(ast.OpMinus, v("x"), i(1)))),
			}),
			i(5),
		),
		Type: tInt,
		Want: i(120),
	},
	{
		// rec (fib : (Int) -> Int) => fn (n : Int) =>
		//   if n < 2 then n else fib(n - 1) + fib(n - 2), applied to 10
		Name: "fibonacci",
		Expr: call(
			recIntFn("fib", "n", &ast.If{
				Cond: op(ast.OpLessThan, v("n"), i(2)),
				Then: v("n"),
				Else: op(ast.OpPlus,
					call(v("fib"), op(ast.OpMinus, v("n"), i(1))),
					call(v("fib"), op(ast.OpMinus, v("n"), i(2)))),
			}),
			i(10),
		),
		Type: tInt,
		Want: i(55),
	},
	{
		// let twice = fn (f : (Int) -> Int) => fn (x : Int) => f(f(x)) in
		//   twice(fn (y : Int) => y + 1)(5)
		Name: "higher-order",
		Expr: &ast.Let{
			Name: "twice",
			Bound: &ast.Fn{
				Params: []ast.Param{{Name: "f", Type: intArrow()}},
				Body: &ast.Fn{
					Params: []ast.Param{{Name: "x", Type: tInt}},
					Body:   call(v("f"), call(v("f"), v("x"))),
				},
			},
			Body: call(
				call(v("twice"), &ast.Fn{
					Params: []ast.Param{{Name: "y", Type: tInt}},
					Body:   op(ast.OpPlus, v("y"), i(1)),
				}),
				i(5),
			),
		},
		Type: tInt,
		Want: i(7),
	},
	{
		// fn () => 42, applied to no arguments
		Name: "nullary",
		Expr: call(&ast.Fn{Params: nil, Body: i(42)}),
		Type: tInt,
		Want: i(42),
	},
	{
		// ~3 < 0
		Name: "negate",
		Expr: op(ast.OpLessThan, op(ast.OpNegate, i(3)), i(0)),
		Type: tBool,
		Want: &ast.BoolLit{Value: true},
	},
}

// All returns every built-in program in run order.
func All() []Program {
	return all
}

// Lookup finds a program by name.
func Lookup(name string) (Program, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}
