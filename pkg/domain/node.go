package domain

import (
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Operator is a comparison operator of a domain triple.
type Operator string

const (
	OpEquals    Operator = "="
	OpNotEquals Operator = "!="
	OpIn        Operator = "in"
	OpNotIn     Operator = "not in"
)

// Valid reports whether op is one of the supported comparison operators.
// Anything else in a triple is a parse failure, not a passthrough.
func (op Operator) Valid() bool {
	switch op {
	case OpEquals, OpNotEquals, OpIn, OpNotIn:
		return true
	}
	return false
}

// Kind is the logical connective of a Combinator.
type Kind int

const (
	KindOr Kind = iota
	KindAnd
	KindNot
)

// Precedence returns the binding strength under standard short-circuit
// precedence: not > and > or. The renderer parenthesizes an operand only
// when its precedence is strictly lower than its parent's.
func (k Kind) Precedence() int {
	return int(k)
}

// Arity returns how many operands the connective consumes.
func (k Kind) Arity() int {
	if k == KindNot {
		return 1
	}
	return 2
}

func (k Kind) String() string {
	switch k {
	case KindOr:
		return "or"
	case KindAnd:
		return "and"
	case KindNot:
		return "not"
	}
	return "unknown"
}

// Node is one node of a parsed domain tree: either a Comparison leaf or a
// Combinator. Trees are built once by the parser and never mutated.
type Node interface {
	node()
}

// Comparison is a (field, operator, value) leaf.
type Comparison struct {
	Field string
	Op    Operator
	Value pyliteral.Value
}

// Combinator joins sub-expressions under a logical connective. The parser
// guarantees len(Operands) == Kind.Arity().
type Combinator struct {
	Kind     Kind
	Operands []Node
}

func (Comparison) node() {}
func (Combinator) node() {}
