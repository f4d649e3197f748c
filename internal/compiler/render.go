package compiler

import (
	"fmt"
	"strings"

	"github.com/odxtools/attrex/pkg/domain"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Render pretty-prints a domain tree as a Python boolean expression with
// minimal parenthesization. It is pure: the same tree always yields the same
// string, and the tree is never mutated.
//
// Render assumes the tree came out of Parse; arity is not re-validated.
func Render(node domain.Node) string {
	switch n := node.(type) {
	case domain.Comparison:
		return renderLeaf(n)
	case domain.Combinator:
		if n.Kind == domain.KindNot {
			return "not " + renderOperand(n.Operands[0], n.Kind)
		}
		parts := make([]string, len(n.Operands))
		for i, op := range n.Operands {
			parts[i] = renderOperand(op, n.Kind)
		}
		return strings.Join(parts, " "+n.Kind.String()+" ")
	}
	panic(fmt.Sprintf("compiler: unknown node type %T", node))
}

// renderOperand wraps a child in parentheses only when its connective binds
// more loosely than the parent's. Leaves are never wrapped.
func renderOperand(node domain.Node, parent domain.Kind) string {
	s := Render(node)
	if c, ok := node.(domain.Combinator); ok && c.Kind.Precedence() < parent.Precedence() {
		return "(" + s + ")"
	}
	return s
}

// renderLeaf maps a comparison triple to its textual form. Equality against
// a boolean collapses to a truthiness test: ('locked', '=', True) reads
// better as "locked" than as "locked == True".
func renderLeaf(c domain.Comparison) string {
	switch c.Op {
	case domain.OpEquals, domain.OpNotEquals:
		if b, ok := c.Value.(pyliteral.Bool); ok {
			truthy := bool(b) == (c.Op == domain.OpEquals)
			if truthy {
				return c.Field
			}
			return "not " + c.Field
		}
		if c.Op == domain.OpEquals {
			return c.Field + " == " + c.Value.Repr()
		}
		return c.Field + " != " + c.Value.Repr()
	case domain.OpIn:
		return c.Field + " in " + c.Value.Repr()
	case domain.OpNotIn:
		return c.Field + " not in " + c.Value.Repr()
	}
	panic(fmt.Sprintf("compiler: unsupported operator %q", c.Op))
}
