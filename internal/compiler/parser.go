// Package compiler turns raw domain-list literals into domain trees and
// renders them as Python boolean expressions.
package compiler

import (
	"fmt"

	"github.com/odxtools/attrex/pkg/domain"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// pending is a connective that is still waiting for operands during the
// prefix scan.
type pending struct {
	kind     domain.Kind
	index    int // token index of the connective, for error reporting
	operands []domain.Node
}

// Parse reduces a prefix-notation domain list to a single tree.
//
// Each '&', '|' token consumes the next two resolved sub-expressions, '!'
// consumes one. Sub-expressions left over at the top level are joined by an
// implicit AND, left to right, mirroring the domain-list convention that
// juxtaposition means conjunction.
func Parse(raw []pyliteral.Value) (domain.Node, error) {
	var stack []pending
	var top []domain.Node

	// resolve attaches a finished sub-expression to the innermost pending
	// connective, cascading upward as connectives fill up.
	resolve := func(n domain.Node) {
		for {
			if len(stack) == 0 {
				top = append(top, n)
				return
			}
			p := &stack[len(stack)-1]
			p.operands = append(p.operands, n)
			if len(p.operands) < p.kind.Arity() {
				return
			}
			n = domain.Combinator{Kind: p.kind, Operands: p.operands}
			stack = stack[:len(stack)-1]
		}
	}

	for i, tok := range raw {
		switch v := tok.(type) {
		case pyliteral.String:
			kind, ok := connective(string(v))
			if !ok {
				return nil, &domain.ValueError{Index: i, Triple: tok.Repr(), Reason: "expected '&', '|', '!' or a comparison triple"}
			}
			stack = append(stack, pending{kind: kind, index: i})
		case pyliteral.Tuple:
			leaf, err := parseLeaf(i, v)
			if err != nil {
				return nil, err
			}
			resolve(leaf)
		case pyliteral.List:
			// Odoo accepts lists and tuples interchangeably for triples.
			leaf, err := parseLeaf(i, pyliteral.Tuple(v))
			if err != nil {
				return nil, err
			}
			resolve(leaf)
		default:
			return nil, &domain.ValueError{Index: i, Triple: tok.Repr(), Reason: fmt.Sprintf("unexpected %T in domain list", tok)}
		}
	}

	if len(stack) > 0 {
		p := stack[len(stack)-1]
		return nil, &domain.StructuralError{
			Index:  p.index,
			Reason: fmt.Sprintf("'%s' expects %d operands, got %d", p.kind, p.kind.Arity(), len(p.operands)),
		}
	}
	if len(top) == 0 {
		return nil, &domain.StructuralError{Index: 0, Reason: "domain list reduced to no expression"}
	}

	// Implicit AND over leftover top-level expressions, in source order.
	node := top[0]
	for _, n := range top[1:] {
		node = domain.Combinator{Kind: domain.KindAnd, Operands: []domain.Node{node, n}}
	}
	return node, nil
}

func connective(tok string) (domain.Kind, bool) {
	switch tok {
	case "&":
		return domain.KindAnd, true
	case "|":
		return domain.KindOr, true
	case "!":
		return domain.KindNot, true
	}
	return 0, false
}

func parseLeaf(index int, t pyliteral.Tuple) (domain.Node, error) {
	if len(t) != 3 {
		return nil, &domain.ValueError{Index: index, Triple: t.Repr(), Reason: fmt.Sprintf("comparison must have 3 elements, got %d", len(t))}
	}
	field, ok := t[0].(pyliteral.String)
	if !ok {
		return nil, &domain.ValueError{Index: index, Triple: t.Repr(), Reason: "field name must be a string"}
	}
	opStr, ok := t[1].(pyliteral.String)
	if !ok {
		return nil, &domain.ValueError{Index: index, Triple: t.Repr(), Reason: "operator must be a string"}
	}
	op := domain.Operator(opStr)
	if !op.Valid() {
		return nil, &domain.ValueError{Index: index, Triple: t.Repr(), Reason: fmt.Sprintf("unsupported operator %q", string(opStr))}
	}
	return domain.Comparison{Field: string(field), Op: op, Value: t[2]}, nil
}
