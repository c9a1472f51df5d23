package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-valconf/valconf/value"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigPlainYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.yml", "a: 1\nb: two\n")

	v, result, err := LoadConfig(path, LoadInfo{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, "two", v.Member("b").AsString(""))
	assert.Equal(t, path, result.MainPath)
}

func TestLoadConfigImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", "a: 1\nb: 2\n")
	mainPath := writeFile(t, dir, "main.yml", "import: base.yml\nb: 99\n")

	v, result, err := LoadConfig(mainPath, LoadInfo{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, int64(99), v.Member("b").AsInt64(0))
	require.Len(t, result.Imports, 1)
}

func TestLoadConfigImportList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yml", "a: 1\n")
	writeFile(t, dir, "two.yml", "b: 2\n")
	mainPath := writeFile(t, dir, "main.yml", "import:\n  - one.yml\n  - two.yml\n")

	v, _, err := LoadConfig(mainPath, LoadInfo{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, int64(2), v.Member("b").AsInt64(0))
}

func TestLoadConfigImportCycleErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", "import: b.yml\n")
	writeFile(t, dir, "b.yml", "import: a.yml\n")
	mainPath := filepath.Join(dir, "a.yml")

	_, _, err := LoadConfig(mainPath, LoadInfo{})
	assert.Error(t, err)
}

func TestLoadConfigMissingImportAccumulatesError(t *testing.T) {
	dir := t.TempDir()
	mainPath := writeFile(t, dir, "main.yml", "import: missing.yml\na: 1\n")

	v, _, err := LoadConfig(mainPath, LoadInfo{})
	assert.Error(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
}

func TestLoadConfigVariantSibling(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", "a: 1\nb: 2\n")
	writeFile(t, dir, "base_dev.yml", "b: 20\n")
	mainPath := writeFile(t, dir, "main.yml", "import: base.yml\n")

	v, _, err := LoadConfig(mainPath, LoadInfo{Variant: "dev"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, int64(20), v.Member("b").AsInt64(0))
}

func TestLoadConfigVariantSiblingMissingIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", "a: 1\n")
	mainPath := writeFile(t, dir, "main.yml", "import: base.yml\n")

	v, _, err := LoadConfig(mainPath, LoadInfo{Variant: "prod"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
}

func TestLoadConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.json", `{"a": 1, "b": [1, 2, 3]}`)

	v, _, err := LoadConfig(path, LoadInfo{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, 3, v.Member("b").NumElts())
}

func TestLoadConfigTemplateExpansion(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.yml", ""+
		"base:\n  timeout: 30\n  retries: 3\n"+
		"fast:\n  template: base\n  timeout: 5\n")

	v, _, err := LoadConfig(path, LoadInfo{})
	require.NoError(t, err)
	fast := v.Member("fast")
	assert.Equal(t, int64(5), fast.Member("timeout").AsInt64(0))
	assert.Equal(t, int64(3), fast.Member("retries").AsInt64(0))
	assert.False(t, fast.HasMember("template"))
}

func TestLoadConfigTemplateCycleErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.yml", ""+
		"a:\n  template: b\n"+
		"b:\n  template: a\n")

	_, _, err := LoadConfig(path, LoadInfo{})
	assert.Error(t, err)
}

func TestLoadConfigUnknownTemplateErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.yml", "a:\n  template: missing\n")

	_, _, err := LoadConfig(path, LoadInfo{})
	assert.Error(t, err)
}

func TestApplySettingsDottedPathOverride(t *testing.T) {
	v := value.Object()
	inner := value.Object()
	inner.SetMember("timeout", value.Int32(30))
	v.SetMember("server", inner)

	err := ApplySettings([]string{"server.timeout=99", "server.enabled"}, &v)
	require.NoError(t, err)
	assert.Equal(t, int64(99), value.MemberPath(v, "server.timeout").AsInt64(0))
	assert.True(t, value.MemberPath(v, "server.enabled").AsBool(false))
}

func TestApplySettingsBareStringValue(t *testing.T) {
	v := value.Object()
	err := ApplySettings([]string{"name=hello world"}, &v)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.Member("name").AsString(""))
}

func TestImportThenLocalOverrideMergesNestedObject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", "model:\n  mesh: a\n  colour: red\n")
	mainPath := writeFile(t, dir, "main.yml", "import: base.yml\nmodel:\n  colour: blue\n")

	v, _, err := LoadConfig(mainPath, LoadInfo{})
	require.NoError(t, err)
	model := v.Member("model")
	assert.Equal(t, "a", model.Member("mesh").AsString(""))
	assert.Equal(t, "blue", model.Member("colour").AsString(""))
}

func TestApplySettingsJSONLiteralValue(t *testing.T) {
	v := value.Object()
	err := ApplySettings([]string{"nums=[1,2,3]", "flag=true", "n=42"}, &v)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Member("nums").NumElts())
	assert.True(t, v.Member("flag").AsBool(false))
	assert.Equal(t, int64(42), v.Member("n").AsInt64(0))
}
