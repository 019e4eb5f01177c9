package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", testdata("menu.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Graph is valid")

	out, err = run(t, "validate", testdata("broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "unreachable: credits")
	assert.NotContains(t, out, "dead end")
	assert.Contains(t, err.Error(), "nowhere")
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", testdata("menu.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `menu -- "1" --> options`)
	assert.Contains(t, out, "class play lazy;")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", testdata("menu.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "| play | transition | lazy | menu |")
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", "--format", "json", testdata("menu.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, `"start": "loading"`)

	_, err = run(t, "export", "--format", "xml", testdata("menu.yaml"))
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	out, err := run(t, "walk", "--choices", "1,0", "--steps", "5", "--mermaid", testdata("menu.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "loading -> menu\n")
	assert.Contains(t, out, "menu -[1]-> options\n")
	assert.Contains(t, out, "options -> menu (reset)\n")
	assert.Contains(t, out, "menu -[0]-> play\n")
	assert.Contains(t, out, "play -> menu (reset)\n")
	assert.Contains(t, out, "stopped at menu after 5 steps")
	assert.Contains(t, out, "class menu current;")
	assert.Regexp(t, `menu\s+choice\s+resets=2 disposals=1`, out)
}

func TestWalk_ChoicesExhausted(t *testing.T) {
	out, err := run(t, "walk", testdata("menu.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scripted choice left")
	assert.Contains(t, out, "stopped at menu after 1 steps")
}

func TestVersionAndLogLevel(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "screenflow version")

	_, err = run(t, "--log-level", "shouting", "version")
	assert.Error(t, err)
}

func TestLoadFlow_Missing(t *testing.T) {
	_, err := run(t, "graph", testdata("absent.yaml"))
	assert.Error(t, err)
}

func TestWalk_UnroutedChoiceFails(t *testing.T) {
	out, err := run(t, "walk", "--choices", "9", testdata("menu.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no successor configured")
	assert.Contains(t, out, "stopped at menu after 1 steps")
}
