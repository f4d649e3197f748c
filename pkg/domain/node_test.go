package domain_test

import (
	"testing"

	"github.com/odxtools/attrex/pkg/domain"
)

func TestOperator_Valid(t *testing.T) {
	for _, op := range []domain.Operator{"=", "!=", "in", "not in"} {
		if !op.Valid() {
			t.Errorf("operator %q should be valid", op)
		}
	}
	for _, op := range []domain.Operator{"?", ">", "<", ">=", "<=", "like", ""} {
		if op.Valid() {
			t.Errorf("operator %q should be invalid", op)
		}
	}
}

func TestKind_Precedence(t *testing.T) {
	if !(domain.KindOr.Precedence() < domain.KindAnd.Precedence() &&
		domain.KindAnd.Precedence() < domain.KindNot.Precedence()) {
		t.Error("precedence must order or < and < not")
	}
}

func TestKind_Arity(t *testing.T) {
	if domain.KindNot.Arity() != 1 {
		t.Errorf("not arity = %d, want 1", domain.KindNot.Arity())
	}
	if domain.KindAnd.Arity() != 2 || domain.KindOr.Arity() != 2 {
		t.Error("and/or arity must be 2")
	}
}
