package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderPlainFromStdin(t *testing.T) {
	out, err := runCLI(t, "# Title\n\n**Bold** body", "render", "--mode", "plain")
	require.NoError(t, err)
	require.Contains(t, out, "Title")
	require.Contains(t, out, "Bold body")
	require.NotContains(t, out, "**")
}

func TestRenderHTMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("## Section\n\n$$\nE=mc^2\n$$"), 0o600))

	out, err := runCLI(t, "", "render", "--mode", "html", path)
	require.NoError(t, err)
	require.Contains(t, out, "<h2>Section</h2>")
	require.Contains(t, out, `<div class="math">`)
}

func TestRenderUnknownModeFails(t *testing.T) {
	_, err := runCLI(t, "x", "render", "--mode", "pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "pdf")
}

func TestRenderUnknownVariantFails(t *testing.T) {
	_, err := runCLI(t, "x", "render", "--variant", "fancy")
	require.Error(t, err)
}

func TestRenderOutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	_, err := runCLI(t, "# T", "render", "--mode", "html", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<h1>T</h1>")
}

func TestBlocksJSONDump(t *testing.T) {
	out, err := runCLI(t, "12. Step\n\n[IMAGE: cap]", "blocks", "--indent")
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "ordered-item"`)
	require.Contains(t, out, `"ordinal": "12."`)
	require.Contains(t, out, `"kind": "image-placeholder"`)
	require.Contains(t, out, `"digest"`)
}

func TestChatVariantOutputDiffers(t *testing.T) {
	src := "# Title\n\nbody"
	full, err := runCLI(t, src, "render", "--mode", "ansi")
	require.NoError(t, err)
	chat, err := runCLI(t, src, "render", "--mode", "ansi", "--variant", "chat")
	require.NoError(t, err)
	require.Less(t, strings.Count(chat, "\n"), strings.Count(full, "\n"))
}

func TestRenderExplicitWidthWraps(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve"
	narrow, err := runCLI(t, long, "render", "--mode", "ansi", "--width", "12")
	require.NoError(t, err)
	wide, err := runCLI(t, long, "render", "--mode", "ansi")
	require.NoError(t, err)
	require.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestRenderWidthZeroToNonTTYLeavesLinesIntact(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve"
	out, err := runCLI(t, long, "render", "--mode", "ansi")
	require.NoError(t, err)
	// buffer output is not a terminal, so no width is substituted
	require.Contains(t, out, long)
}

func TestConfigPathCommand(t *testing.T) {
	out, err := runCLI(t, "", "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, "config.toml")
}

func TestConfigShowListsOptions(t *testing.T) {
	out, err := runCLI(t, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "render.mode = ansi")
	require.Contains(t, out, "pager.enabled = true")
}

func TestMissingFileError(t *testing.T) {
	_, err := runCLI(t, "", "render", "--mode", "plain", "/nonexistent/doc.md")
	require.Error(t, err)
}
