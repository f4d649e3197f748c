package pyliteral

import (
	"strconv"
	"strings"
)

// Value is a decoded Python literal. The reader only produces the closed
// set of types below; consumers switch on the concrete type.
type Value interface {
	// Repr renders the value back in Python literal form, the way the
	// rewritten expressions must quote it.
	Repr() string
}

// String is a quoted string literal.
type String string

// Int is an integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// Bool is True or False.
type Bool bool

// None is the None literal.
type None struct{}

// Placeholder is an Odoo XML-id substitution token such as %(module.record)d.
// It is not valid Python, but view domains carry them and they must survive
// the rewrite verbatim and unquoted.
type Placeholder string

// List is a [...] literal.
type List []Value

// Tuple is a (...) literal.
type Tuple []Value

// DictEntry is a single key/value pair of a Dict.
type DictEntry struct {
	Key   Value
	Value Value
}

// Dict is a {...} literal. Entries keep source order so that rewritten
// attributes come out in a deterministic, diff-friendly order.
type Dict struct {
	Entries []DictEntry
}

// Get returns the value stored under a string key, if present.
func (d Dict) Get(key string) (Value, bool) {
	for _, e := range d.Entries {
		if k, ok := e.Key.(String); ok && string(k) == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (s String) Repr() string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range string(s) {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

func (i Int) Repr() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) Repr() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	// Python always shows a fractional part for floats.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (b Bool) Repr() string {
	if b {
		return "True"
	}
	return "False"
}

func (None) Repr() string {
	return "None"
}

func (p Placeholder) Repr() string {
	return string(p)
}

func (l List) Repr() string {
	items := make([]string, len(l))
	for i, v := range l {
		items[i] = v.Repr()
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (t Tuple) Repr() string {
	if len(t) == 1 {
		return "(" + t[0].Repr() + ",)"
	}
	items := make([]string, len(t))
	for i, v := range t {
		items[i] = v.Repr()
	}
	return "(" + strings.Join(items, ", ") + ")"
}

func (d Dict) Repr() string {
	items := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		items[i] = e.Key.Repr() + ": " + e.Value.Repr()
	}
	return "{" + strings.Join(items, ", ") + "}"
}
