// Package prettyprinter renders expressions back to source-like text. It is
// presentation only: nothing in the checker, evaluator or unifier depends on
// its output for semantics.
package prettyprinter

import (
	"strconv"
	"strings"

	"github.com/minml-lang/minml/internal/ast"
)

// Operator precedence (higher = binds tighter).
var operatorPrecedence = map[string]int{
	"=": 3,
	"<": 4,
	"+": 7,
	"-": 7,
	"*": 8,
	"~": 9,
}

const (
	precBinder = 0  // let, fn, rec, if
	precApply  = 10 // f(x)
	precAtom   = 11
)

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return precAtom
}

// CodePrinter accumulates rendered source text.
type CodePrinter struct {
	buf strings.Builder
}

// Print renders e as source-like text.
func Print(e ast.Expr) string {
	p := &CodePrinter{}
	p.printExpr(e, 0)
	return p.buf.String()
}

func (p *CodePrinter) printExpr(e ast.Expr, prec int) {
	switch e := e.(type) {
	case *ast.IntLit:
		p.buf.WriteString(strconv.FormatInt(e.Value, 10))

	case *ast.BoolLit:
		p.buf.WriteString(strconv.FormatBool(e.Value))

	case *ast.Var:
		p.buf.WriteString(e.Name)

	case *ast.Primop:
		p.printPrimop(e, prec)

	case *ast.If:
		p.parenIf(prec > precBinder, func() {
			p.buf.WriteString("if ")
			p.printExpr(e.Cond, precBinder)
			p.buf.WriteString(" then ")
			p.printExpr(e.Then, precBinder)
			p.buf.WriteString(" else ")
			p.printExpr(e.Else, precBinder)
		})

	case *ast.Let:
		p.parenIf(prec > precBinder, func() {
			p.buf.WriteString("let ")
			p.buf.WriteString(e.Name)
			p.buf.WriteString(" = ")
			p.printExpr(e.Bound, precBinder)
			p.buf.WriteString(" in ")
			p.printExpr(e.Body, precBinder)
			p.buf.WriteString(" end")
		})

	case *ast.Rec:
		p.parenIf(prec > precBinder, func() {
			p.buf.WriteString("rec (")
			p.buf.WriteString(e.Name)
			p.buf.WriteString(" : ")
			p.buf.WriteString(e.Type.String())
			p.buf.WriteString(") => ")
			p.printExpr(e.Body, precBinder)
		})

	case *ast.Fn:
		p.parenIf(prec > precBinder, func() {
			p.buf.WriteString("fn (")
			for i, param := range e.Params {
				if i > 0 {
					p.buf.WriteString(", ")
				}
				p.buf.WriteString(param.Name)
				p.buf.WriteString(" : ")
				p.buf.WriteString(param.Type.String())
			}
			p.buf.WriteString(") => ")
			p.printExpr(e.Body, precBinder)
		})

	case *ast.Apply:
		p.printExpr(e.Fn, precApply)
		p.buf.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printExpr(arg, precBinder)
		}
		p.buf.WriteByte(')')
	}
}

func (p *CodePrinter) printPrimop(e *ast.Primop, prec int) {
	opPrec := getPrecedence(e.Op.Symbol())
	if e.Op.Arity() == 1 {
		p.parenIf(prec > opPrec, func() {
			p.buf.WriteString(e.Op.Symbol())
			p.printExpr(e.Args[0], opPrec)
		})
		return
	}
	p.parenIf(prec > opPrec, func() {
		p.printExpr(e.Args[0], opPrec)
		p.buf.WriteByte(' ')
		p.buf.WriteString(e.Op.Symbol())
		p.buf.WriteByte(' ')
		// Left-associative: the right operand needs one level more.
		p.printExpr(e.Args[1], opPrec+1)
	})
}

func (p *CodePrinter) parenIf(needed bool, body func()) {
	if needed {
		p.buf.WriteByte('(')
		body()
		p.buf.WriteByte(')')
		return
	}
	body()
}
