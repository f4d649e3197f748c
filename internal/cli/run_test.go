package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odxtools/attrex/internal/cli"
	"github.com/odxtools/attrex/internal/testutils"
)

// chdirTemp changes into a fresh temp dir for the duration of the test.
// Stand-in for t.Chdir, which requires Go 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleView = `<odoo>
  <field name="date" attrs="{'invisible': [('artisan_task', '=', False)], 'readonly': [('locked', '=', True)]}"/>
</odoo>`

func TestRun_ConvertWritesInPlace(t *testing.T) {
	chdirTemp(t)
	path := testutils.WriteViewFile(t, "view.xml", sampleView)

	err := cli.Run(cli.Options{Globs: []string{path}})
	require.NoError(t, err)

	out := testutils.ReadFile(t, path)
	assert.Contains(t, out, `invisible="not artisan_task"`)
	assert.Contains(t, out, `readonly="locked"`)
	assert.NotContains(t, out, "attrs=")
}

func TestRun_TestModeLeavesFilesUntouched(t *testing.T) {
	chdirTemp(t)
	path := testutils.WriteViewFile(t, "view.xml", sampleView)

	err := cli.Run(cli.Options{Globs: []string{path}, Test: true})
	require.NoError(t, err)

	assert.Equal(t, sampleView, testutils.ReadFile(t, path), "test mode must not modify files")
}

func TestRun_CheckReportsFailures(t *testing.T) {
	chdirTemp(t)
	bad := `<odoo><field name="x" attrs="{'invisible': [('a', '?', True)]}"/></odoo>`
	path := testutils.WriteViewFile(t, "bad.xml", bad)

	err := cli.Run(cli.Options{Globs: []string{path}, Check: true})
	require.Error(t, err)

	assert.Equal(t, bad, testutils.ReadFile(t, path), "check must not modify files")
}

func TestRun_ParallelJobs(t *testing.T) {
	chdirTemp(t)
	var globs []string
	for _, name := range []string{"a.xml", "b.xml", "c.xml", "d.xml"} {
		globs = append(globs, testutils.WriteViewFile(t, name, sampleView))
	}

	err := cli.Run(cli.Options{Globs: globs, Jobs: 4})
	require.NoError(t, err)

	for _, path := range globs {
		assert.Contains(t, testutils.ReadFile(t, path), `readonly="locked"`)
	}
}

func TestRun_NoGlobs(t *testing.T) {
	chdirTemp(t)
	err := cli.Run(cli.Options{})
	require.Error(t, err)
}
