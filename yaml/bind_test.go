package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-valconf/valconf/value"
)

func TestLoadTextScalars(t *testing.T) {
	v, err := LoadText([]byte("a: 1\nb: 3.5\nc: true\nd: null\ne: hello\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, 3.5, v.Member("b").AsDouble(0))
	assert.True(t, v.Member("c").AsBool(false))
	assert.True(t, v.Member("d").IsNull())
	assert.Equal(t, "hello", v.Member("e").AsString(""))
}

func TestLoadTextOctalPlainScalar(t *testing.T) {
	v, err := LoadText([]byte("mode: 0o755\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(0o755), v.Member("mode").AsInt64(0))
}

func TestLoadTextSequence(t *testing.T) {
	v, err := LoadText([]byte("- 1\n- 2\n- 3\n"))
	require.NoError(t, err)
	require.True(t, v.IsArray())
	assert.Equal(t, 3, v.NumElts())
	assert.Equal(t, int64(2), v.Elt(1).AsInt64(0))
}

func TestLoadTextQuotedScalarNeverClassified(t *testing.T) {
	v, err := LoadText([]byte(`a: "123"` + "\n"))
	require.NoError(t, err)
	assert.True(t, v.Member("a").IsString())
	assert.Equal(t, "123", v.Member("a").AsString(""))
}

func TestLoadTextFlowMappingImplicitNull(t *testing.T) {
	v, err := LoadText([]byte("{a: , b: 2}\n"))
	require.NoError(t, err)
	assert.True(t, v.Member("a").IsNull())
	assert.Equal(t, int64(2), v.Member("b").AsInt64(0))
}

func TestAnchorAliasRoundtrip(t *testing.T) {
	v, err := LoadText([]byte("base: &b\n  x: 1\nderived: *b\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("derived").Member("x").AsInt64(0))
}

func TestMergeKeyExistingKeysWin(t *testing.T) {
	text := "defaults: &d\n  x: 1\n  y: 2\nitem:\n  <<: *d\n  y: 99\n"
	v, err := LoadText([]byte(text))
	require.NoError(t, err)
	item := v.Member("item")
	assert.Equal(t, int64(1), item.Member("x").AsInt64(0))
	assert.Equal(t, int64(99), item.Member("y").AsInt64(0))
}

func TestUnknownAnchorErrors(t *testing.T) {
	_, err := LoadText([]byte("a: *missing\n"))
	assert.Error(t, err)
}

func TestAsYAMLRoundTripsScalars(t *testing.T) {
	v, err := LoadText([]byte("a: 1\nb: hello\nc: true\n"))
	require.NoError(t, err)
	out, err := AsYAML(v, 2)
	require.NoError(t, err)

	back, err := LoadText([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, int64(1), back.Member("a").AsInt64(0))
	assert.Equal(t, "hello", back.Member("b").AsString(""))
	assert.True(t, back.Member("c").AsBool(false))
}

func TestOctalPlainScalarClassifiesAsInt(t *testing.T) {
	v, err := LoadText([]byte("key: 0o17\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(15), v.Member("key").AsInt64(0))
}

func TestBlockFoldedScalarFoldsLinesAndStripsBlankLine(t *testing.T) {
	v, err := LoadText([]byte("value: >-\n  one\n  two\n\n  three\n"))
	require.NoError(t, err)
	assert.Equal(t, "one two\nthree", v.Member("value").AsString(""))
}

func TestFlowMappingMissingValueYieldsNull(t *testing.T) {
	v, err := LoadText([]byte("{ a: 1, b: [2, 3], c: }\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Member("a").AsInt64(0))
	assert.Equal(t, 2, v.Member("b").NumElts())
	assert.True(t, v.Member("c").IsNull())
}

func TestDoubleQuotedScalarDecodesHexAndUnicodeEscapes(t *testing.T) {
	v, err := LoadText([]byte(`v: "\x41é\U0001F600"` + "\n"))
	require.NoError(t, err)
	assert.Equal(t, "Aé\U0001F600", v.Member("v").AsString(""))
}

func TestAsYAMLQuotesAmbiguousStrings(t *testing.T) {
	obj := value.Object()
	obj.SetMember("count", value.String("123"))
	out, err := AsYAML(obj, 2)
	require.NoError(t, err)

	back, err := LoadText([]byte(out))
	require.NoError(t, err)
	assert.True(t, back.Member("count").IsString())
	assert.Equal(t, "123", back.Member("count").AsString(""))
}
