package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDomain marks a state-key whose domain list is empty. It is not a
// failure: the attribute adapter omits such keys from its output.
var ErrEmptyDomain = errors.New("empty domain")

// StructuralError reports a prefix sequence that does not reduce to exactly
// one expression, or a connective that never received its operands.
type StructuralError struct {
	Index  int // token index in the domain list
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("domain structure error at token %d: %s", e.Index, e.Reason)
}

// ValueError reports a malformed comparison triple: unsupported operator,
// wrong arity, or a non-string field name.
type ValueError struct {
	Index  int    // token index in the domain list
	Triple string // literal form of the offending token
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid domain term %s at token %d: %s", e.Triple, e.Index, e.Reason)
}
