package analyzer

import (
	"fmt"

	"github.com/minml-lang/minml/internal/typesystem"
)

// Type errors form their own taxonomy, separate from the evaluator's runtime
// errors and the unifier's errors: they are raised at the first detected
// inconsistency and propagate to the caller of Infer.

// UnboundVariableError reports a variable with no binding in the context.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

func NewUnboundVariableError(name string) *UnboundVariableError {
	return &UnboundVariableError{Name: name}
}

// ApplyNonArrowError reports an application whose function position has a
// non-function type.
type ApplyNonArrowError struct {
	Actual typesystem.Type
}

func (e *ApplyNonArrowError) Error() string {
	return fmt.Sprintf("cannot apply expression of type %s", e.Actual)
}

func NewApplyNonArrowError(actual typesystem.Type) *ApplyNonArrowError {
	return &ApplyNonArrowError{Actual: actual}
}

// ArityMismatchError reports an argument or operand count that differs from
// the declared parameter count.
type ArityMismatchError struct {
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: want %d arguments, got %d", e.Want, e.Got)
}

func NewArityMismatchError(want, got int) *ArityMismatchError {
	return &ArityMismatchError{Want: want, Got: got}
}

// TypeMismatchError reports an expression whose inferred type differs from
// the type its position requires.
type TypeMismatchError struct {
	Expected typesystem.Type
	Actual   typesystem.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func NewTypeMismatchError(expected, actual typesystem.Type) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Actual: actual}
}

// DuplicateParamError reports a function literal declaring the same
// parameter name twice.
type DuplicateParamError struct {
	Name string
}

func (e *DuplicateParamError) Error() string {
	return fmt.Sprintf("duplicate parameter name: %s", e.Name)
}

func NewDuplicateParamError(name string) *DuplicateParamError {
	return &DuplicateParamError{Name: name}
}
