package xmlfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odxtools/attrex/internal/adapters/xmlfile"
	"github.com/odxtools/attrex/internal/logging"
)

func rewrite(t *testing.T, src string) *xmlfile.Result {
	t.Helper()
	rw := xmlfile.New("attrs", logging.NewNop())
	res, err := rw.Rewrite([]byte(src))
	require.NoError(t, err)
	return res
}

func TestRewrite_FieldAttrs(t *testing.T) {
	res := rewrite(t, `<odoo>
  <field name="date" attrs="{'invisible': [('artisan_task', '=', False)], 'readonly': [('locked', '=', True)]}"/>
</odoo>`)

	require.True(t, res.Changed)
	assert.Equal(t, 1, res.Converted)
	assert.Empty(t, res.Issues)

	out := string(res.Output)
	assert.Contains(t, out, `invisible="not artisan_task"`)
	assert.Contains(t, out, `readonly="locked"`)
	assert.NotContains(t, out, "attrs=")
}

func TestRewrite_AttributeElement(t *testing.T) {
	res := rewrite(t, `<xpath expr="//field[@name='date']" position="attributes">
  <attribute name="attrs">{'invisible': [('x', '=', False)], 'required': [('y', '=', True)]}</attribute>
</xpath>`)

	require.True(t, res.Changed)
	out := string(res.Output)
	assert.Contains(t, out, `<attribute name="invisible">not x</attribute>`)
	assert.Contains(t, out, `<attribute name="required">y</attribute>`)
	assert.NotContains(t, out, `name="attrs"`)
}

func TestRewrite_AttributeElementEmptyText(t *testing.T) {
	src := `<xpath><attribute name="attrs"/></xpath>`
	res := rewrite(t, src)

	assert.False(t, res.Changed)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0].Err.Error(), "adapt manually")
	assert.Equal(t, src, string(res.Output))
}

func TestRewrite_AttributeElementAllEmptyDomains(t *testing.T) {
	res := rewrite(t, `<xpath><attribute name="attrs">{'invisible': []}</attribute></xpath>`)

	require.True(t, res.Changed)
	assert.NotContains(t, string(res.Output), "<attribute")
}

func TestRewrite_ColumnInvisible(t *testing.T) {
	res := rewrite(t, `<tree>
  <field name="a" invisible="1"/>
  <field name="b" invisible="0"/>
  <field name="c" invisible="not x"/>
</tree>`)

	require.True(t, res.Changed)
	assert.Equal(t, 2, res.ColumnInvisible)

	out := string(res.Output)
	assert.Contains(t, out, `<field name="a" column_invisible="True"/>`)
	assert.Contains(t, out, `<field name="b" column_invisible="False"/>`)
	// Expression-valued invisible is row visibility and must be kept.
	assert.Contains(t, out, `<field name="c" invisible="not x"/>`)
}

func TestRewrite_MalformedDomainSkipsOnlyThatElement(t *testing.T) {
	res := rewrite(t, `<odoo>
  <field name="bad" attrs="{'invisible': [('a', '?', True)]}"/>
  <field name="good" attrs="{'readonly': [('locked', '=', True)]}"/>
</odoo>`)

	require.True(t, res.Changed)
	assert.Equal(t, 1, res.Converted)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0].Path, "field")

	out := string(res.Output)
	// The failing element keeps its attrs untouched.
	assert.Contains(t, out, `attrs="{'invisible': [('a', '?', True)]}"`)
	assert.Contains(t, out, `readonly="locked"`)
}

func TestRewrite_PlaceholdersSurviveUnquoted(t *testing.T) {
	res := rewrite(t, `<odoo>
  <field name="stage_id" attrs="{'invisible': [('stage_id', 'not in', [%(m.new_request)d, %(m.new_quotation)d])]}"/>
</odoo>`)

	require.True(t, res.Changed)
	assert.Contains(t, string(res.Output), `invisible="stage_id not in [%(m.new_request)d, %(m.new_quotation)d]"`)
}

func TestRewrite_PreservesDeclaration(t *testing.T) {
	res := rewrite(t, `<?xml version="1.0" encoding="utf-8"?>
<odoo>
  <field name="x" attrs="{'invisible': [('a', '=', True)]}"/>
</odoo>`)

	require.True(t, res.Changed)
	assert.True(t, strings.HasPrefix(string(res.Output), "<?xml"), "declaration must be preserved")
}

func TestRewrite_NoAttrsLeavesBytesUntouched(t *testing.T) {
	src := `<odoo>
  <field name="x" invisible="not a"/>
</odoo>`
	res := rewrite(t, src)

	assert.False(t, res.Changed)
	assert.Equal(t, src, string(res.Output))
}

func TestRewrite_InvalidXML(t *testing.T) {
	rw := xmlfile.New("attrs", logging.NewNop())
	_, err := rw.Rewrite([]byte(`<odoo><field`))
	require.Error(t, err)
}
