package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingListImplementsFlagValue(t *testing.T) {
	var s settingList
	require.NoError(t, s.Set("a=1"))
	require.NoError(t, s.Set("b=2"))
	assert.Equal(t, "a=1,b=2", s.String())
	assert.Equal(t, settingList{"a=1", "b=2"}, s)
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPrintsJSONByDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "main.yml", "a: 1\nb: two\n")

	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	code := run([]string{path})
	w.Close()
	os.Stdout = old

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	out := string(buf[:n])

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, `"b"`)
}

func TestRunMissingFileReturnsConfigExitCode(t *testing.T) {
	code := run([]string{"/nonexistent/path/does-not-exist.yml"})
	assert.Equal(t, exitConfig, code)
}

func TestRunUsageErrorOnNoArgs(t *testing.T) {
	code := run(nil)
	assert.Equal(t, exitUsage, code)
}

func TestRunDepsMode(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yml", "x: 1\n")
	path := writeConfig(t, dir, "main.yml", "import: base.yml\n")

	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	code := run([]string{"-deps", path})
	w.Close()
	os.Stdout = old

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	out := string(buf[:n])

	assert.Equal(t, exitOK, code)
	assert.True(t, strings.Contains(out, "base.yml"))
}
