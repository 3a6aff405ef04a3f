package ast

import (
	"github.com/minml-lang/minml/internal/typesystem"
)

// Expr is the base interface for all expression nodes. Expressions are
// immutable once constructed: substitution and evaluation always build new
// nodes and never write through an existing one, so trees may be shared
// freely.
type Expr interface {
	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (*IntLit) exprNode() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

// Var is a reference to a name. Names are plain strings compared by exact
// equality; all scoping is resolved by substitution, not by the name itself.
type Var struct {
	Name string
}

func (*Var) exprNode() {}

// If is a conditional with both branches present.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*If) exprNode() {}

// Primop applies a primitive operation to an ordered list of operands.
type Primop struct {
	Op   Op
	Args []Expr
}

func (*Primop) exprNode() {}

// Param is one declared parameter of a function literal.
type Param struct {
	Name string
	Type typesystem.Type
}

// Fn is a function literal with explicitly typed parameters. The parameter
// list may be empty (a nullary function). A function literal is a value.
type Fn struct {
	Params []Param
	Body   Expr
}

func (*Fn) exprNode() {}

// Rec binds Name to the whole construct inside Body, realizing recursion.
// The declared Type is the type of the construct itself.
type Rec struct {
	Name string
	Type typesystem.Type
	Body Expr
}

func (*Rec) exprNode() {}

// Let binds the value of Bound to Name inside Body.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

func (*Let) exprNode() {}

// Apply applies a function-producing expression to an ordered list of
// arguments.
type Apply struct {
	Fn   Expr
	Args []Expr
}

func (*Apply) exprNode() {}
