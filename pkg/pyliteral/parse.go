package pyliteral

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError reports a malformed literal with the byte offset of the fault.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("literal syntax error at offset %d: %s", e.Offset, e.Reason)
}

// Parse decodes a single Python literal from src. Trailing content after the
// literal (other than whitespace) is an error.
func Parse(src string) (Value, error) {
	p := &parser{src: src}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing content %q", p.rest())
	}
	return v, nil
}

// ParseDict decodes src and requires the result to be a dict, the shape of
// an attrs attribute value.
func ParseDict(src string) (Dict, error) {
	v, err := Parse(src)
	if err != nil {
		return Dict{}, err
	}
	d, ok := v.(Dict)
	if !ok {
		return Dict{}, &SyntaxError{Offset: 0, Reason: fmt.Sprintf("expected a dict literal, got %T", v)}
	}
	return d, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) rest() string {
	r := p.src[p.pos:]
	if len(r) > 12 {
		r = r[:12] + "..."
	}
	return r
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		// Line continuations appear in hand-wrapped view attrs.
		if c == '\\' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '\n' {
			p.pos += 2
			continue
		}
		break
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) value() (Value, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch {
	case c == '\'' || c == '"':
		return p.string()
	case c == '[':
		items, err := p.sequence('[', ']')
		if err != nil {
			return nil, err
		}
		return List(items), nil
	case c == '(':
		items, err := p.sequence('(', ')')
		if err != nil {
			return nil, err
		}
		return Tuple(items), nil
	case c == '{':
		return p.dict()
	case c == '%':
		return p.placeholder()
	case c == '-' || c == '+' || c >= '0' && c <= '9' || c == '.':
		return p.number()
	case unicode.IsLetter(rune(c)):
		return p.keyword()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) string() (Value, error) {
	quote := p.src[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return String(sb.String()), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return nil, p.errorf("unterminated escape")
			}
			e := p.src[p.pos]
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteByte(e)
			default:
				// Python keeps unknown escapes verbatim.
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return nil, p.errorf("unterminated string")
}

func (p *parser) sequence(open, close byte) ([]Value, error) {
	p.pos++ // past open
	var items []Value
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated %q", string(open))
		}
		if c == close {
			p.pos++
			return items, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, p.errorf("unterminated %q", string(open))
		}
		switch c {
		case ',':
			p.pos++
		case close:
			// handled on next iteration
		default:
			return nil, p.errorf("expected ',' or %q, got %q", string(close), c)
		}
	}
}

func (p *parser) dict() (Value, error) {
	p.pos++ // past '{'
	d := Dict{}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated dict")
		}
		if c == '}' {
			p.pos++
			return d, nil
		}
		key, err := p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if c, ok = p.peek(); !ok || c != ':' {
			return nil, p.errorf("expected ':' after dict key")
		}
		p.pos++
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		d.Entries = append(d.Entries, DictEntry{Key: key, Value: val})
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, p.errorf("unterminated dict")
		}
		switch c {
		case ',':
			p.pos++
		case '}':
			// handled on next iteration
		default:
			return nil, p.errorf("expected ',' or '}', got %q", c)
		}
	}
}

// placeholder reads an XML-id substitution token: %(dotted.name)d or %(...)s.
func (p *parser) placeholder() (Value, error) {
	start := p.pos
	if p.pos+1 >= len(p.src) || p.src[p.pos+1] != '(' {
		return nil, p.errorf("expected '(' after '%%'")
	}
	end := strings.IndexByte(p.src[p.pos:], ')')
	if end < 0 {
		return nil, p.errorf("unterminated placeholder")
	}
	end += p.pos
	for _, r := range p.src[start+2 : end] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			return nil, p.errorf("invalid placeholder name character %q", r)
		}
	}
	if end+1 >= len(p.src) || (p.src[end+1] != 'd' && p.src[end+1] != 's') {
		return nil, p.errorf("placeholder must end in 'd' or 's'")
	}
	p.pos = end + 2
	return Placeholder(p.src[start:p.pos]), nil
}

func (p *parser) number() (Value, error) {
	start := p.pos
	if c, _ := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.pos++
			if c != '.' && p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: start, Reason: fmt.Sprintf("bad float %q", text)}
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &SyntaxError{Offset: start, Reason: fmt.Sprintf("bad integer %q", text)}
	}
	return Int(i), nil
}

func (p *parser) keyword() (Value, error) {
	start := p.pos
	for p.pos < len(p.src) && (unicode.IsLetter(rune(p.src[p.pos])) || p.src[p.pos] == '_') {
		p.pos++
	}
	switch word := p.src[start:p.pos]; word {
	case "True":
		return Bool(true), nil
	case "False":
		return Bool(false), nil
	case "None":
		return None{}, nil
	default:
		p.pos = start
		return nil, p.errorf("unknown keyword %q", word)
	}
}
