package compiler

import (
	"fmt"

	"github.com/odxtools/attrex/pkg/domain"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Attributes is the converted form of one attrs dict: state-key to rendered
// expression, with Keys preserving the source order for deterministic output.
type Attributes struct {
	Keys   []string
	Values map[string]string
}

// KeyError wraps a parse or render failure for a single state-key. Other
// keys of the same dict are unaffected.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("state-key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// ConvertDomain compiles one raw domain value to an expression string.
//
// Besides domain lists, views carry the degenerate forms 0 and 1 (constant
// false/true). An empty list returns domain.ErrEmptyDomain: a vacuous
// condition carries no constraint and callers drop the key.
func ConvertDomain(raw pyliteral.Value) (string, error) {
	switch v := raw.(type) {
	case pyliteral.Int:
		switch v {
		case 0:
			return "False", nil
		case 1:
			return "True", nil
		}
		return "", &domain.ValueError{Index: 0, Triple: raw.Repr(), Reason: "domain must be a list, 0 or 1"}
	case pyliteral.Bool:
		return pyliteral.Bool(v).Repr(), nil
	case pyliteral.List:
		if len(v) == 0 {
			return "", domain.ErrEmptyDomain
		}
		node, err := Parse(v)
		if err != nil {
			return "", err
		}
		return Render(node), nil
	default:
		return "", &domain.ValueError{Index: 0, Triple: raw.Repr(), Reason: fmt.Sprintf("domain must be a list, got %T", raw)}
	}
}

// ConvertAttrs converts every state-key of an attrs dict independently.
// Keys with an empty domain are omitted. A failing key is reported in the
// error slice and left out of the result; it never corrupts the others.
func ConvertAttrs(dict pyliteral.Dict) (*Attributes, []error) {
	out := &Attributes{Values: make(map[string]string, len(dict.Entries))}
	var errs []error

	for _, entry := range dict.Entries {
		key, ok := entry.Key.(pyliteral.String)
		if !ok {
			errs = append(errs, &KeyError{Key: entry.Key.Repr(), Err: fmt.Errorf("state-key must be a string, got %T", entry.Key)})
			continue
		}
		expr, err := ConvertDomain(entry.Value)
		if err == domain.ErrEmptyDomain {
			continue
		}
		if err != nil {
			errs = append(errs, &KeyError{Key: string(key), Err: err})
			continue
		}
		out.Keys = append(out.Keys, string(key))
		out.Values[string(key)] = expr
	}
	return out, errs
}
