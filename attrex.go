package attrex

import (
	"github.com/odxtools/attrex/internal/compiler"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Version is the release version reported by `attrex version`.
const Version = "0.4.0"

// Attributes is a converted attrs dict: state-key to expression, with Keys
// in source order.
type Attributes = compiler.Attributes

// ConvertDomain transpiles one domain-list literal into a boolean
// expression string.
//
// An empty domain returns domain.ErrEmptyDomain; callers that map whole
// attrs dicts usually want ConvertAttrs, which omits such keys.
func ConvertDomain(src string) (string, error) {
	raw, err := pyliteral.Parse(src)
	if err != nil {
		return "", err
	}
	return compiler.ConvertDomain(raw)
}

// ConvertAttrs transpiles a full attrs dict literal. Each state-key is
// converted independently; the first failing key aborts with its error so
// the caller cannot silently lose constraints.
func ConvertAttrs(src string) (*Attributes, error) {
	dict, err := pyliteral.ParseDict(src)
	if err != nil {
		return nil, err
	}
	attrs, errs := compiler.ConvertAttrs(dict)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return attrs, nil
}
