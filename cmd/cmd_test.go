package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winzigc/pkg/formatter"
	"winzigc/pkg/parser"
)

const copyProgram = `program copy:
var x : integer;
begin
    read(x);
    output(x)
end copy.
`

// resetFlags restores every flag to its default so tests do not leak state
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--no-color", "--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCommandText(t *testing.T) {
	source := writeSource(t, t.TempDir(), "copy.wz", copyProgram)

	output, err := executeCommand(t, "parse", source)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "program(7)\n. <identifier>(1)\n. . copy(0)\n"), output)
	assert.Equal(t, 22, strings.Count(output, "\n"))
}

func TestParseCommandFormats(t *testing.T) {
	source := writeSource(t, t.TempDir(), "copy.wz", copyProgram)

	output, err := executeCommand(t, "parse", "-f", "json", source)
	require.NoError(t, err)
	assert.Contains(t, output, `"label": "program"`)

	output, err = executeCommand(t, "parse", "--format", "yaml", source)
	require.NoError(t, err)
	assert.Contains(t, output, "label: program")

	_, err = executeCommand(t, "parse", "-f", "xml", source)
	assert.Error(t, err)
}

func TestParseCommandSave(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "copy.wz", copyProgram)

	output, err := executeCommand(t, "parse", "--save", source)
	require.NoError(t, err)
	assert.Empty(t, output)

	written, err := os.ReadFile(filepath.Join(dir, "copy.tree"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "program(7)\n"))

	target := filepath.Join(dir, "explicit", "tree.json")
	_, err = executeCommand(t, "parse", "-f", "json", "-o", target, source)
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestParseCommandSyntaxError(t *testing.T) {
	source := writeSource(t, t.TempDir(), "bad.wz", "program bad:\nbegin\n  output(1)\n")

	_, err := executeCommand(t, "parse", source)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrSyntax))
	assert.Contains(t, err.Error(), "line 3, col 12")
}

func TestTokensCommand(t *testing.T) {
	source := writeSource(t, t.TempDir(), "copy.wz", copyProgram)

	output, err := executeCommand(t, "tokens", source)
	require.NoError(t, err)

	assert.Contains(t, output, "KIND")
	assert.Contains(t, output, "PROG")
	assert.Contains(t, output, "IDENTIFIER")
	assert.Contains(t, output, "21 tokens")

	output, err = executeCommand(t, "tokens", "--keywords", source)
	require.NoError(t, err)
	assert.NotContains(t, output, "IDENTIFIER")

	bad := writeSource(t, t.TempDir(), "bad.wz", "x @ y")
	_, err = executeCommand(t, "tokens", bad)
	assert.ErrorContains(t, err, "cannot tokenize at line: 1 col: 3")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.wz", copyProgram)
	writeSource(t, dir, "nested/also_good.wz", copyProgram)
	writeSource(t, dir, "vendor/ignored.wz", "not a program")

	output, err := executeCommand(t, "check", "-j", "2", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(output, "OK"))
	assert.Contains(t, output, "2 files, 2 passed, 0 failed")

	writeSource(t, dir, "bad.wz", "program bad: begin x := end bad.")
	output, err = executeCommand(t, "check", dir)
	require.Error(t, err)
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "3 files, 2 passed, 1 failed")

	output, err = executeCommand(t, "check", "--quiet", dir)
	require.Error(t, err)
	assert.NotContains(t, output, "OK")
}

func TestCheckCommandWritesTrees(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "trees")
	writeSource(t, dir, "copy.wz", copyProgram)

	_, err := executeCommand(t, "check", "--write", "--output-dir", outDir, dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "copy.tree"))
}

func TestCheckCommandNoFiles(t *testing.T) {
	_, err := executeCommand(t, "check", t.TempDir())
	assert.ErrorContains(t, err, "no WinZig source files found")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "copy.wz", copyProgram)

	output, err := executeCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "Found 1 WinZig source files")

	configPath := filepath.Join(dir, ".winzigc.yaml")
	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	_, err = executeCommand(t, "init", dir)
	assert.ErrorContains(t, err, "already exists")

	_, err = executeCommand(t, "init", "--overwrite", "--output-dir", "trees", dir)
	require.NoError(t, err)
	config, err = LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "trees", config.OutputDir)

	_, err = executeCommand(t, "init", "--toml", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".winzigc.toml"))
}

func TestConfigFlagIsUsed(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "copy.wz", copyProgram)
	configPath := writeSource(t, dir, "custom.yaml", "format: yaml\nindent: \"| \"\n")

	output, err := executeCommand(t, "--config", configPath, "parse", source)
	require.NoError(t, err)
	assert.Contains(t, output, "label: program")

	output, err = executeCommand(t, "--config", configPath, "parse", "-f", "text", source)
	require.NoError(t, err)
	assert.Contains(t, output, "| | copy(0)")
}

func TestDebugCommand(t *testing.T) {
	source := writeSource(t, t.TempDir(), "demo.wz", `program demo:
function f(a : integer) : integer;
begin
    return a
end f;
begin
    output(f(1))
end demo.
`)

	output, err := executeCommand(t, "debug", source)
	require.NoError(t, err)

	assert.Contains(t, output, "=== PARSER DEBUG OUTPUT ===")
	assert.Contains(t, output, "--- tokens ---")
	assert.Contains(t, output, "Functions: (int) 1")
	assert.Contains(t, output, "--- function f ---")
	assert.Contains(t, output, "Label: fcn")
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "winzigc dev")
}

func TestEvalSource(t *testing.T) {
	var buf bytes.Buffer
	p := parser.New(parser.Options{})

	evalSource(&buf, p, formatter.New(), copyProgram)
	assert.True(t, strings.HasPrefix(buf.String(), "program(7)\n"))

	buf.Reset()
	evalSource(&buf, p, formatter.New(), "program p: begin")
	assert.Contains(t, buf.String(), "syntax error at line 1, col 17")
}
