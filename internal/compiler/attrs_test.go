package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odxtools/attrex/internal/compiler"
	"github.com/odxtools/attrex/pkg/domain"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

func convertAttrs(t *testing.T, src string) (*compiler.Attributes, []error) {
	t.Helper()
	dict, err := pyliteral.ParseDict(src)
	require.NoError(t, err)
	return compiler.ConvertAttrs(dict)
}

func TestConvertAttrs_EndToEnd(t *testing.T) {
	attrs, errs := convertAttrs(t, `{'invisible': [('artisan_task', '=', False)], 'readonly': [('locked', '=', True)]}`)
	require.Empty(t, errs)

	assert.Equal(t, []string{"invisible", "readonly"}, attrs.Keys)
	assert.Equal(t, "not artisan_task", attrs.Values["invisible"])
	assert.Equal(t, "locked", attrs.Values["readonly"])
}

func TestConvertAttrs_EmptyDomainOmitted(t *testing.T) {
	attrs, errs := convertAttrs(t, `{'invisible': [], 'required': [('x', '=', True)]}`)
	require.Empty(t, errs)

	assert.Equal(t, []string{"required"}, attrs.Keys)
	assert.NotContains(t, attrs.Values, "invisible")
}

func TestConvertAttrs_ConstantDomains(t *testing.T) {
	attrs, errs := convertAttrs(t, `{'invisible': 1, 'readonly': 0}`)
	require.Empty(t, errs)

	assert.Equal(t, "True", attrs.Values["invisible"])
	assert.Equal(t, "False", attrs.Values["readonly"])
}

func TestConvertAttrs_KeysAreIndependent(t *testing.T) {
	attrs, errs := convertAttrs(t, `{'invisible': [('a', '?', True)], 'readonly': [('locked', '=', True)]}`)

	// The bad key is reported, the good one still converts.
	require.Len(t, errs, 1)
	var keyErr *compiler.KeyError
	require.ErrorAs(t, errs[0], &keyErr)
	assert.Equal(t, "invisible", keyErr.Key)
	var valErr *domain.ValueError
	assert.ErrorAs(t, errs[0], &valErr)

	assert.Equal(t, []string{"readonly"}, attrs.Keys)
	assert.Equal(t, "locked", attrs.Values["readonly"])
}

func TestConvertDomain_EmptyList(t *testing.T) {
	_, err := compiler.ConvertDomain(pyliteral.List{})
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
}

func TestConvertDomain_RejectsNonDomains(t *testing.T) {
	for _, raw := range []pyliteral.Value{
		pyliteral.String("nope"),
		pyliteral.Int(5),
		pyliteral.Dict{},
	} {
		_, err := compiler.ConvertDomain(raw)
		var valErr *domain.ValueError
		assert.ErrorAs(t, err, &valErr, "raw %s", raw.Repr())
	}
}
