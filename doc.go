/*
Package attrex rewrites legacy Odoo view domains into the boolean
expressions used since Odoo 17.

Before 17.0 a view element carried a single attrs attribute holding a dict
of UI-state keys mapped to prefix-notation domain lists:

	<field name="date" attrs="{'invisible': [('artisan_task', '=', False)],
	                           'readonly': [('locked', '=', True)]}"/>

attrex transpiles each domain into a minimal, correctly parenthesized
Python boolean expression and writes one attribute per state-key:

	<field name="date" invisible="not artisan_task" readonly="locked"/>

The library surface is small:

	expr, err := attrex.ConvertDomain("[('a', '=', True), ('b', '=', False)]")
	// expr == "a and not b"

	attrs, err := attrex.ConvertAttrs("{'invisible': [('x', '=', False)]}")
	// attrs.Values["invisible"] == "not x"

File discovery, XML rewriting, dry-run diffs and the conversion service
live in the attrex command; see cmd/attrex.
*/
package attrex
