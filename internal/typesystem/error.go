package typesystem

import "fmt"

// MismatchError indicates two types that cannot be made equal.
type MismatchError struct {
	Left  UType
	Right UType
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.Left, e.Right)
}

func NewMismatchError(left, right UType) *MismatchError {
	return &MismatchError{Left: left, Right: right}
}

// OccursError indicates a variable occurring inside the type it would be
// bound to, which would produce an infinite type.
type OccursError struct {
	Var  *UVar
	Type UType
}

func (e *OccursError) Error() string {
	return fmt.Sprintf("infinite type: '%s occurs in %s", e.Var.Name, e.Type)
}

func NewOccursError(v *UVar, t UType) *OccursError {
	return &OccursError{Var: v, Type: t}
}
