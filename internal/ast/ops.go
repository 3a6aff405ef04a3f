package ast

import (
	"github.com/minml-lang/minml/internal/typesystem"
)

// Op identifies a primitive operation. Every op has a fixed arity, a fixed
// operand type list and a fixed result type; the checker matches operand
// types against the domain exactly, in order.
type Op int

const (
	OpEqual Op = iota
	OpLessThan
	OpPlus
	OpMinus
	OpTimes
	OpNegate
)

type opInfo struct {
	symbol string
	domain []typesystem.Type
	rng    typesystem.Type
}

var ops = [...]opInfo{
	OpEqual:    {"=", []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, typesystem.TBool{}},
	OpLessThan: {"<", []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, typesystem.TBool{}},
	OpPlus:     {"+", []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, typesystem.TInt{}},
	OpMinus:    {"-", []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, typesystem.TInt{}},
	OpTimes:    {"*", []typesystem.Type{typesystem.TInt{}, typesystem.TInt{}}, typesystem.TInt{}},
	OpNegate:   {"~", []typesystem.Type{typesystem.TInt{}}, typesystem.TInt{}},
}

func (op Op) Symbol() string { return ops[op].symbol }

func (op Op) Arity() int { return len(ops[op].domain) }

// Domain returns the declared operand types, in order.
func (op Op) Domain() []typesystem.Type { return ops[op].domain }

// Range returns the declared result type.
func (op Op) Range() typesystem.Type { return ops[op].rng }

func (op Op) String() string { return ops[op].symbol }
