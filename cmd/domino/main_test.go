package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/domino/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stylesheet = `
.cta { -domino-container: .card; }
.price { -domino-order: -1; }
@media (max-width: 480px) { .cta { -domino-container: footer; } }
`

const page = `<html><head>%s</head><body><div class="card"><h2>Teapot</h2><p class="price">12</p></div>
<a class="cta">Buy</a><footer></footer></body></html>`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommandsExist(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"compile", "apply"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCompileStdin(t *testing.T) {
	out, err := run(t, stylesheet, "compile")
	require.NoError(t, err)
	ss, err := rules.Load(strings.NewReader(out), rules.JSON)
	require.NoError(t, err)
	assert.Equal(t, 1, len(ss.Rules.Container))
	assert.Equal(t, 1, len(ss.Rules.Order))
	require.Equal(t, 1, len(ss.MediaQueries))
	assert.Equal(t, "(max-width: 480px)", ss.MediaQueries[0].Directive)
}

func TestCompileToYAMLFile(t *testing.T) {
	dir := t.TempDir()
	css := writeTemp(t, dir, "styles.css", stylesheet)
	bundle := filepath.Join(dir, "bundle.yaml")
	_, err := run(t, "", "compile", css, "-o", bundle)
	require.NoError(t, err)
	f, err := os.Open(bundle)
	require.NoError(t, err)
	defer f.Close()
	ss, err := rules.Load(f, rules.YAML)
	require.NoError(t, err)
	assert.Equal(t, ".card", ss.Rules.Container[0].Container)
}

func TestCompileUnknownFormat(t *testing.T) {
	_, err := run(t, stylesheet, "compile", "--format", "toml")
	assert.ErrorIs(t, err, rules.ErrUnknownFormat)
}

func TestApplyWithBundle(t *testing.T) {
	dir := t.TempDir()
	css := writeTemp(t, dir, "styles.css", stylesheet)
	bundle := filepath.Join(dir, "bundle.json")
	_, err := run(t, "", "compile", css, "-o", bundle)
	require.NoError(t, err)
	html := writeTemp(t, dir, "index.html", strings.Replace(page, "%s", "", 1))
	out, err := run(t, "", "apply", "--rules", bundle, html)
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="card"><h2>Teapot</h2><p class="price">12</p><a class="cta">Buy</a></div>`)
}

func TestApplyLinkedStylesheetSmallScreen(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "styles.css", stylesheet)
	html := writeTemp(t, dir, "index.html",
		strings.Replace(page, "%s", `<link rel="stylesheet" href="styles.css">`, 1))
	out, err := run(t, "", "apply", "--width", "360", "--dump", html)
	require.NoError(t, err)
	assert.Contains(t, out, "footer")
	assert.Contains(t, out, "a.cta")
	assert.Less(t, strings.Index(out, "footer"), strings.Index(out, "a.cta"))
}

func TestApplyGraphViz(t *testing.T) {
	dir := t.TempDir()
	html := writeTemp(t, dir, "index.html",
		strings.Replace(page, "%s", "<style>"+stylesheet+"</style>", 1))
	dot := filepath.Join(dir, "dom.dot")
	result := filepath.Join(dir, "out.html")
	_, err := run(t, "", "apply", "--dot", dot, "-o", result, html)
	require.NoError(t, err)
	diagram, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(diagram, []byte("digraph")))
	rendered, err := os.ReadFile(result)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), `<a class="cta">Buy</a></div>`)
}

func TestApplyMissingBundle(t *testing.T) {
	dir := t.TempDir()
	html := writeTemp(t, dir, "index.html", strings.Replace(page, "%s", "", 1))
	_, err := run(t, "", "apply", "--rules", filepath.Join(dir, "nope.json"), html)
	assert.Error(t, err)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := run(t, stylesheet, "--config", filepath.Join(t.TempDir(), "domino.yaml"), "compile")
	assert.Error(t, err)
}
