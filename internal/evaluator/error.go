package evaluator

import (
	"fmt"

	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/prettyprinter"
)

// Runtime errors are a taxonomy of their own, distinct from the checker's
// type errors: they describe what went wrong while reducing an expression.
// Every one of them is fatal to the current Eval call and propagates to the
// caller unchanged.

// FreeVariableError reports evaluation reaching an unbound variable. A
// well-scoped program never triggers it, since every binder is substituted
// away before its body is evaluated.
type FreeVariableError struct {
	Name string
}

func (e *FreeVariableError) Error() string {
	return fmt.Sprintf("free variable at runtime: %s", e.Name)
}

func NewFreeVariableError(name string) *FreeVariableError {
	return &FreeVariableError{Name: name}
}

// BadPrimopArgsError reports a primitive applied to values of the wrong
// shape or count.
type BadPrimopArgsError struct {
	Op   ast.Op
	Args []ast.Expr
}

func (e *BadPrimopArgsError) Error() string {
	return fmt.Sprintf("bad arguments to primitive %s", e.Op.Symbol())
}

func NewBadPrimopArgsError(op ast.Op, args []ast.Expr) *BadPrimopArgsError {
	return &BadPrimopArgsError{Op: op, Args: args}
}

// NonBoolCondError reports a conditional whose condition did not reduce to a
// boolean value.
type NonBoolCondError struct {
	Actual ast.Expr
}

func (e *NonBoolCondError) Error() string {
	return fmt.Sprintf("condition did not evaluate to a boolean: %s", prettyprinter.Print(e.Actual))
}

func NewNonBoolCondError(actual ast.Expr) *NonBoolCondError {
	return &NonBoolCondError{Actual: actual}
}

// ArityMismatchError reports an application whose argument count differs
// from the function's declared parameter count.
type ArityMismatchError struct {
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: function takes %d arguments, got %d", e.Want, e.Got)
}

func NewArityMismatchError(want, got int) *ArityMismatchError {
	return &ArityMismatchError{Want: want, Got: got}
}

// ApplyNonFunctionError reports an application whose function position did
// not reduce to a function literal.
type ApplyNonFunctionError struct {
	Actual ast.Expr
}

func (e *ApplyNonFunctionError) Error() string {
	return fmt.Sprintf("cannot apply non-function: %s", prettyprinter.Print(e.Actual))
}

func NewApplyNonFunctionError(actual ast.Expr) *ApplyNonFunctionError {
	return &ApplyNonFunctionError{Actual: actual}
}
