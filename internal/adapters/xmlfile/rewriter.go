// Package xmlfile rewrites legacy attrs domains inside Odoo view XML.
package xmlfile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/beevik/etree"

	"github.com/odxtools/attrex/internal/compiler"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Rewriter converts one XML document at a time. It is stateless across
// documents and safe to share between goroutines.
type Rewriter struct {
	attrsAttr string
	logger    *slog.Logger
}

// New creates a Rewriter for the given source attribute name ("attrs" in
// stock Odoo).
func New(attrsAttr string, logger *slog.Logger) *Rewriter {
	if attrsAttr == "" {
		attrsAttr = "attrs"
	}
	return &Rewriter{attrsAttr: attrsAttr, logger: logger}
}

// Issue records a state-key or element that could not be converted. The
// element is left untouched so no information is lost.
type Issue struct {
	Path string // etree path of the element
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}

// Result is the outcome of rewriting one document.
type Result struct {
	Output          []byte
	Changed         bool
	Converted       int // attrs occurrences rewritten
	ColumnInvisible int // legacy tree invisible flags renamed
	Issues          []Issue
}

// Rewrite parses src, rewrites every attrs occurrence and legacy column
// invisible flag, and serializes the document back. Elements that fail to
// convert are reported in Result.Issues and kept as-is; the rest of the
// document is still rewritten.
func (rw *Rewriter) Rewrite(src []byte) (*Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(src); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	res := &Result{}

	for _, el := range doc.FindElements("//*[@" + rw.attrsAttr + "]") {
		rw.rewriteElement(el, res)
	}
	for _, el := range doc.FindElements("//attribute[@name='" + rw.attrsAttr + "']") {
		rw.rewriteAttributeElement(el, res)
	}
	for _, el := range doc.FindElements("//tree//field[@invisible]") {
		rw.rewriteColumnInvisible(el, res)
	}

	if !res.Changed {
		res.Output = src
		return res, nil
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize XML: %w", err)
	}
	res.Output = out
	return res, nil
}

// rewriteElement handles <field attrs="{...}"/>: one attribute per state-key
// replaces the attrs attribute.
func (rw *Rewriter) rewriteElement(el *etree.Element, res *Result) {
	raw := strings.TrimSpace(el.SelectAttrValue(rw.attrsAttr, ""))
	attrs, ok := rw.convert(el, raw, res)
	if !ok {
		return
	}
	for _, key := range attrs.Keys {
		el.CreateAttr(key, attrs.Values[key])
	}
	el.RemoveAttr(rw.attrsAttr)
	res.Converted++
	res.Changed = true
}

// rewriteAttributeElement handles the inheritance form
// <attribute name="attrs">{...}</attribute>: the element is renamed to the
// first state-key and one sibling <attribute> is added per remaining key.
func (rw *Rewriter) rewriteAttributeElement(el *etree.Element, res *Result) {
	raw := strings.TrimSpace(el.Text())
	if raw == "" {
		rw.report(el, res, fmt.Errorf("empty %s value, adapt manually", rw.attrsAttr))
		return
	}
	attrs, ok := rw.convert(el, raw, res)
	if !ok {
		return
	}

	parent := el.Parent()
	if parent == nil {
		rw.report(el, res, fmt.Errorf("attribute element has no parent"))
		return
	}
	if len(attrs.Keys) == 0 {
		// Every key had an empty domain; the override carries nothing.
		parent.RemoveChild(el)
		res.Converted++
		res.Changed = true
		return
	}

	el.CreateAttr("name", attrs.Keys[0])
	el.SetText(attrs.Values[attrs.Keys[0]])
	idx := el.Index()
	for i, key := range attrs.Keys[1:] {
		sibling := etree.NewElement("attribute")
		sibling.CreateAttr("name", key)
		sibling.SetText(attrs.Values[key])
		parent.InsertChildAt(idx+1+i, sibling)
	}
	res.Converted++
	res.Changed = true
}

// rewriteColumnInvisible renames the legacy numeric invisible flag on tree
// fields. Expression values (including ones this run just produced) are row
// visibility, not column visibility, and are left alone.
func (rw *Rewriter) rewriteColumnInvisible(el *etree.Element, res *Result) {
	switch el.SelectAttrValue("invisible", "") {
	case "1":
		el.CreateAttr("column_invisible", "True")
	case "0":
		el.CreateAttr("column_invisible", "False")
	default:
		return
	}
	el.RemoveAttr("invisible")
	res.ColumnInvisible++
	res.Changed = true
}

// convert parses and compiles one attrs dict, reporting per-key failures.
// It returns ok=false when the element must be left untouched.
func (rw *Rewriter) convert(el *etree.Element, raw string, res *Result) (*compiler.Attributes, bool) {
	dict, err := pyliteral.ParseDict(raw)
	if err != nil {
		rw.report(el, res, err)
		return nil, false
	}
	attrs, errs := compiler.ConvertAttrs(dict)
	if len(errs) > 0 {
		// Partial conversion would drop the failing keys from the view.
		// Keep the original attribute and surface every failure.
		for _, err := range errs {
			rw.report(el, res, err)
		}
		return nil, false
	}
	return attrs, true
}

func (rw *Rewriter) report(el *etree.Element, res *Result, err error) {
	path := el.GetPath()
	res.Issues = append(res.Issues, Issue{Path: path, Err: err})
	if rw.logger != nil {
		rw.logger.Warn("skipping element", "path", path, "err", err)
	}
}
